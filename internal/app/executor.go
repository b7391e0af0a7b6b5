package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/rastro/internal/platform/logging"
)

// Evaluations run in five steps:
//
//  1. VALIDATE - check inputs before touching any catalog
//  2. RESOLVE  - look up units and constants and compute the raw quantity
//  3. VERIFY   - convert to the requested unit and reject non-finite values
//  4. RECORD   - count the verified result
//  5. RESPOND  - shape the result for the caller
//
// Any step may be left nil. The context is checked before each step; once
// it is done the operation fails at that step with the context's error.

const tracerName = "github.com/jsamuelsen/rastro/app"

// ExecutionStep names a step of an evaluation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepResolve  ExecutionStep = "resolve"
	StepVerify   ExecutionStep = "verify"
	StepRecord   ExecutionStep = "record"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

func stepError(step ExecutionStep, message string, cause error) error {
	return &ExecutionError{Step: step, Message: message, Cause: cause}
}

// Executor runs operations step by step with logging and tracing.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor with the given logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation holds the functions for each step. I is the input, R the
// resolved value, V the verified value and O the output.
type Operation[I, R, V, O any] struct {
	// Name identifies this operation in logs, spans and metrics.
	Name string

	Validate func(ctx context.Context, input I) error
	Resolve  func(ctx context.Context, input I) (R, error)
	Verify   func(ctx context.Context, input I, resolved R) (V, error)
	Record   func(ctx context.Context, input I, verified V, err error)
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

type run[I, R, V, O any] struct {
	logger *slog.Logger
	op     Operation[I, R, V, O]
	input  I
}

func (r *run[I, R, V, O]) validate(ctx context.Context) error {
	if r.op.Validate == nil {
		return nil
	}

	if err := r.op.Validate(ctx, r.input); err != nil {
		r.logger.WarnContext(ctx, "validation failed", slog.Any("error", err))

		return stepError(StepValidate, "invalid input", err)
	}

	return nil
}

func (r *run[I, R, V, O]) resolve(ctx context.Context) (R, error) {
	var zero R

	if r.op.Resolve == nil {
		return zero, nil
	}

	resolved, err := r.op.Resolve(ctx, r.input)
	if err != nil {
		r.logger.WarnContext(ctx, "resolve failed", slog.Any("error", err))

		return zero, stepError(StepResolve, "resolving operands", err)
	}

	return resolved, nil
}

func (r *run[I, R, V, O]) verify(ctx context.Context, resolved R) (V, error) {
	var zero V

	if r.op.Verify == nil {
		return zero, nil
	}

	verified, err := r.op.Verify(ctx, r.input, resolved)
	if err != nil {
		r.logger.WarnContext(ctx, "verification failed", slog.Any("error", err))

		return zero, stepError(StepVerify, "checking result", err)
	}

	return verified, nil
}

func (r *run[I, R, V, O]) record(ctx context.Context, verified V, err error) {
	if r.op.Record == nil {
		return
	}

	r.op.Record(ctx, r.input, verified, err)
}

func (r *run[I, R, V, O]) respond(ctx context.Context, verified V) (O, error) {
	var zero O

	if r.op.Respond == nil {
		return zero, nil
	}

	out, err := r.op.Respond(ctx, r.input, verified)
	if err != nil {
		return zero, stepError(StepRespond, "shaping response", err)
	}

	return out, nil
}

// Execute runs op on input. Record is called exactly once, with the error
// of the first failing step or nil.
func Execute[I, R, V, O any](ctx context.Context, exec *Executor, op Operation[I, R, V, O], input I) (out O, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, op.Name)
	defer span.End()

	logger := logging.FromContextOr(ctx, exec.logger)

	r := &run[I, R, V, O]{
		logger: logger.With(slog.String("operation", op.Name)),
		op:     op,
		input:  input,
	}

	start := time.Now()

	var verified V

	defer func() {
		r.record(ctx, verified, err)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			if step, ok := GetExecutionStep(err); ok {
				span.SetAttributes(attribute.String("rastro.failed_step", string(step)))
			}

			return
		}

		r.logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))
	}()

	if err = checkpoint(ctx, StepValidate); err != nil {
		return out, err
	}

	if err = r.validate(ctx); err != nil {
		return out, err
	}

	if err = checkpoint(ctx, StepResolve); err != nil {
		return out, err
	}

	resolved, err := r.resolve(ctx)
	if err != nil {
		return out, err
	}

	if err = checkpoint(ctx, StepVerify); err != nil {
		return out, err
	}

	verified, err = r.verify(ctx, resolved)
	if err != nil {
		return out, err
	}

	if err = checkpoint(ctx, StepRespond); err != nil {
		return out, err
	}

	return r.respond(ctx, verified)
}

// checkpoint fails the operation at step once ctx is cancelled or past
// its deadline.
func checkpoint(ctx context.Context, step ExecutionStep) error {
	if err := ctx.Err(); err != nil {
		return stepError(step, "context done", err)
	}

	return nil
}

// IsExecutionError checks if an error occurred during execution.
func IsExecutionError(err error) bool {
	var execErr *ExecutionError

	return errors.As(err, &execErr)
}

// GetExecutionStep extracts the step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
