package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/rastro/internal/constants"
	"github.com/jsamuelsen/rastro/internal/domain"
	"github.com/jsamuelsen/rastro/internal/platform/metrics"
	"github.com/jsamuelsen/rastro/internal/ports"
	"github.com/jsamuelsen/rastro/internal/units"
)

// Operation names used in logs, spans and metrics.
const (
	OpGravitationalForce = "gravitational_force"
	OpConvert            = "convert"
	OpConvertConstant    = "convert_constant"
)

// DefaultForceTarget is the unit forces are reported in unless overridden.
const DefaultForceTarget = "N"

// ForceInput describes a two-body Newtonian attraction.
type ForceInput struct {
	M1       units.Quantity
	M2       units.Quantity
	Distance units.Quantity
	// Target is the unit expression of the result; empty means newtons.
	Target string
}

// DefaultForceInput is three solar masses and 100 kg separated by 2.2 au.
func DefaultForceInput() ForceInput {
	return ForceInput{
		M1:       constants.MSun.Quantity().Scale(3),
		M2:       units.Q(100, units.Kilogram),
		Distance: units.Q(2.2, units.AstronomicalUnit),
		Target:   DefaultForceTarget,
	}
}

// ConversionInput is a value in one unit to be expressed in another.
type ConversionInput struct {
	Value float64
	From  string
	To    string
}

// EvaluatorService computes quantities from constants and unit expressions.
type EvaluatorService struct {
	units     ports.UnitCatalog
	constants ports.ConstantCatalog
	metrics   *metrics.Recorder
	executor  *Executor
	logger    *slog.Logger
}

// EvaluatorServiceConfig contains the dependencies of the evaluator.
type EvaluatorServiceConfig struct {
	Units     ports.UnitCatalog
	Constants ports.ConstantCatalog
	Metrics   *metrics.Recorder
	Logger    *slog.Logger
}

// NewEvaluatorService creates an evaluator. It panics when a catalog is
// missing.
func NewEvaluatorService(cfg EvaluatorServiceConfig) *EvaluatorService {
	if cfg.Units == nil || cfg.Constants == nil {
		panic("app: evaluator requires unit and constant catalogs")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.EvaluatorService"))

	return &EvaluatorService{
		units:     cfg.Units,
		constants: cfg.Constants,
		metrics:   cfg.Metrics,
		executor:  NewExecutor(logger),
		logger:    logger,
	}
}

// Constant returns the constant with the given abbreviation.
func (s *EvaluatorService) Constant(_ context.Context, abbrev string) (constants.Constant, error) {
	return s.constants.Lookup(abbrev)
}

// Constants returns every known constant.
func (s *EvaluatorService) Constants(_ context.Context) []constants.Constant {
	return s.constants.All()
}

// Unit resolves a unit expression.
func (s *EvaluatorService) Unit(_ context.Context, expr string) (units.Unit, error) {
	return s.units.Parse(expr)
}

type forceOperands struct {
	force  units.Quantity
	target units.Unit
}

// GravitationalForce computes G*M1*M2/Distance^2 in the target unit.
func (s *EvaluatorService) GravitationalForce(ctx context.Context, in ForceInput) (units.Quantity, error) {
	op := Operation[ForceInput, forceOperands, units.Quantity, units.Quantity]{
		Name: OpGravitationalForce,
		Validate: func(_ context.Context, in ForceInput) error {
			if in.Distance.Value == 0 {
				return domain.NewValidationErrorWithValue("distance", "must be non-zero", in.Distance.String())
			}

			return nil
		},
		Resolve: func(_ context.Context, in ForceInput) (forceOperands, error) {
			g, err := s.constants.Lookup("G")
			if err != nil {
				return forceOperands{}, err
			}

			target, err := s.units.Parse(targetOrDefault(in.Target))
			if err != nil {
				return forceOperands{}, err
			}

			f, err := gravitationalForce(g.Quantity(), in)
			if err != nil {
				return forceOperands{}, err
			}

			return forceOperands{force: f, target: target}, nil
		},
		Verify: func(_ context.Context, _ ForceInput, r forceOperands) (units.Quantity, error) {
			return finiteIn(r.force, r.target)
		},
		Record: func(_ context.Context, _ ForceInput, _ units.Quantity, err error) {
			s.metrics.ObserveEvaluation(OpGravitationalForce, err)
		},
		Respond: respondQuantity[ForceInput],
	}

	return Execute(ctx, s.executor, op, in)
}

type conversionOperands struct {
	q  units.Quantity
	to units.Unit
}

// Convert expresses value from one unit expression in another.
func (s *EvaluatorService) Convert(ctx context.Context, in ConversionInput) (units.Quantity, error) {
	op := Operation[ConversionInput, conversionOperands, units.Quantity, units.Quantity]{
		Name: OpConvert,
		Validate: func(_ context.Context, in ConversionInput) error {
			if in.From == "" {
				return domain.NewValidationError("from", "unit expression is required")
			}

			if in.To == "" {
				return domain.NewValidationError("to", "unit expression is required")
			}

			return nil
		},
		Resolve: func(_ context.Context, in ConversionInput) (conversionOperands, error) {
			from, err := s.units.Parse(in.From)
			if err != nil {
				return conversionOperands{}, err
			}

			to, err := s.units.Parse(in.To)
			if err != nil {
				return conversionOperands{}, err
			}

			return conversionOperands{q: units.Q(in.Value, from), to: to}, nil
		},
		Verify: func(_ context.Context, _ ConversionInput, r conversionOperands) (units.Quantity, error) {
			return finiteIn(r.q, r.to)
		},
		Record: func(_ context.Context, _ ConversionInput, _ units.Quantity, err error) {
			s.metrics.ObserveEvaluation(OpConvert, err)
			s.metrics.ObserveConversion(err)
		},
		Respond: respondQuantity[ConversionInput],
	}

	return Execute(ctx, s.executor, op, in)
}

// ConvertConstant returns the constant abbrev expressed in target, or in
// its own unit when target is empty.
func (s *EvaluatorService) ConvertConstant(ctx context.Context, abbrev, target string) (units.Quantity, error) {
	op := Operation[string, conversionOperands, units.Quantity, units.Quantity]{
		Name: OpConvertConstant,
		Validate: func(_ context.Context, abbrev string) error {
			if abbrev == "" {
				return domain.NewValidationError("constant", "abbreviation is required")
			}

			return nil
		},
		Resolve: func(_ context.Context, abbrev string) (conversionOperands, error) {
			c, err := s.constants.Lookup(abbrev)
			if err != nil {
				return conversionOperands{}, err
			}

			if target == "" {
				return conversionOperands{q: c.Quantity(), to: c.Unit}, nil
			}

			to, err := s.units.Parse(target)
			if err != nil {
				return conversionOperands{}, err
			}

			return conversionOperands{q: c.Quantity(), to: to}, nil
		},
		Verify: func(_ context.Context, _ string, r conversionOperands) (units.Quantity, error) {
			return finiteIn(r.q, r.to)
		},
		Record: func(_ context.Context, _ string, _ units.Quantity, err error) {
			s.metrics.ObserveEvaluation(OpConvertConstant, err)
			s.metrics.ObserveConversion(err)
		},
		Respond: respondQuantity[string],
	}

	return Execute(ctx, s.executor, op, abbrev)
}

func finiteIn(q units.Quantity, target units.Unit) (units.Quantity, error) {
	out, err := q.To(target)
	if err != nil {
		return units.Quantity{}, err
	}

	if !out.IsFinite() {
		return units.Quantity{}, domain.NewValidationErrorWithValue("value", "result is not finite", out.Value)
	}

	return out, nil
}

// gravitationalForce evaluates G*M1*M2/Distance^2 left to right.
func gravitationalForce(g units.Quantity, in ForceInput) (units.Quantity, error) {
	gm, err := g.Mul(in.M1)
	if err != nil {
		return units.Quantity{}, err
	}

	gmm, err := gm.Mul(in.M2)
	if err != nil {
		return units.Quantity{}, err
	}

	d2, err := in.Distance.Pow(2)
	if err != nil {
		return units.Quantity{}, err
	}

	return gmm.Div(d2)
}

func respondQuantity[I any](_ context.Context, _ I, q units.Quantity) (units.Quantity, error) {
	return q, nil
}

func targetOrDefault(target string) string {
	if target == "" {
		return DefaultForceTarget
	}

	return target
}

// Name implements ports.HealthChecker.
func (s *EvaluatorService) Name() string { return "constant-catalog" }

// Check implements ports.HealthChecker. The evaluator is ready when the
// constants the force computation depends on resolve.
func (s *EvaluatorService) Check(ctx context.Context) error {
	for _, abbrev := range []string{"G", "M_sun"} {
		if _, err := s.constants.Lookup(abbrev); err != nil {
			return err
		}
	}

	return ctx.Err()
}
