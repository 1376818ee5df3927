package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "fitpro"

// Metrics holds the domain counters. Instruments come from the global meter provider,
// so they are no-ops until Initialize installs a real one.
type Metrics struct {
	sessionsLogged    metric.Int64Counter
	experienceAwarded metric.Int64Counter
	personalBests     metric.Int64Counter
	nutritionPlans    metric.Int64Counter
}

// NewMetrics creates the counters on the current global meter provider
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	sessions, err := meter.Int64Counter("fitpro.sessions.logged",
		metric.WithDescription("Training sessions logged"))
	if err != nil {
		return nil, err
	}
	xp, err := meter.Int64Counter("fitpro.experience.awarded",
		metric.WithDescription("Experience points awarded"))
	if err != nil {
		return nil, err
	}
	pbs, err := meter.Int64Counter("fitpro.personal_bests.set",
		metric.WithDescription("Personal bests improved, by lift"))
	if err != nil {
		return nil, err
	}
	plans, err := meter.Int64Counter("fitpro.nutrition_plans.generated",
		metric.WithDescription("Nutrition plans generated, by goal"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		sessionsLogged:    sessions,
		experienceAwarded: xp,
		personalBests:     pbs,
		nutritionPlans:    plans,
	}, nil
}

// RecordSession counts a scored session and its rewards
func (m *Metrics) RecordSession(ctx context.Context, experience int, newPBs []string) {
	if m == nil {
		return
	}
	m.sessionsLogged.Add(ctx, 1)
	m.experienceAwarded.Add(ctx, int64(experience))
	for _, lift := range newPBs {
		m.personalBests.Add(ctx, 1, metric.WithAttributes(attribute.String("lift", lift)))
	}
}

// RecordNutritionPlan counts a generated plan
func (m *Metrics) RecordNutritionPlan(ctx context.Context, goal string) {
	if m == nil {
		return
	}
	m.nutritionPlans.Add(ctx, 1, metric.WithAttributes(attribute.String("goal", goal)))
}
