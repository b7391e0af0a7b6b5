// Package metrics exposes Prometheus counters for quantity evaluations,
// unit conversions and unit listings.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/rastro/internal/domain"
)

const namespace = "rastro"

// Result label values.
const (
	ResultOK           = "ok"
	ResultNotFound     = "not_found"
	ResultInvalid      = "invalid"
	ResultIncompatible = "incompatible"
	ResultError        = "error"
)

// Recorder counts domain operations. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	evaluations *prometheus.CounterVec
	conversions *prometheus.CounterVec
	listings    *prometheus.CounterVec
}

// NewRecorder creates the counters and registers them with reg.
// Counters already registered by an earlier Recorder are reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	evaluations, err := registerCounter(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluations_total",
		Help:      "Quantity evaluations by operation and result.",
	}, []string{"operation", "result"}))
	if err != nil {
		return nil, err
	}

	conversions, err := registerCounter(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversions_total",
		Help:      "Unit conversions by result.",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}

	listings, err := registerCounter(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unit_listings_total",
		Help:      "Unit system listings by system.",
	}, []string{"system"}))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		evaluations: evaluations,
		conversions: conversions,
		listings:    listings,
	}, nil
}

func registerCounter(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}

		return nil, err
	}

	return c, nil
}

// ObserveEvaluation counts one evaluation of op.
func (r *Recorder) ObserveEvaluation(op string, err error) {
	if r == nil {
		return
	}

	r.evaluations.WithLabelValues(op, Result(err)).Inc()
}

// ObserveConversion counts one unit conversion.
func (r *Recorder) ObserveConversion(err error) {
	if r == nil {
		return
	}

	r.conversions.WithLabelValues(Result(err)).Inc()
}

// ObserveListing counts one listing of system.
func (r *Recorder) ObserveListing(system string) {
	if r == nil {
		return
	}

	r.listings.WithLabelValues(system).Inc()
}

// Result maps an error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case domain.IsNotFound(err):
		return ResultNotFound
	case domain.IsValidation(err):
		return ResultInvalid
	case domain.IsIncompatible(err):
		return ResultIncompatible
	default:
		return ResultError
	}
}
