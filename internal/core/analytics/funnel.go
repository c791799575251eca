package analytics

import "fmt"

// FunnelStage is one step of an adoption funnel
type FunnelStage struct {
	Name      string
	UserCount int
	Order     int
}

// NewFunnelStage validates a funnel stage at the boundary
func NewFunnelStage(name string, users, order int) (FunnelStage, error) {
	if users < 0 {
		return FunnelStage{}, fmt.Errorf("funnel stage %q users %d: %w", name, users, ErrNegativeCount)
	}
	return FunnelStage{Name: name, UserCount: users, Order: order}, nil
}

// FunnelStep is a funnel stage with its derived percentages.
// Dropoff is relative to the previous stage and absent for the first stage
// or when the previous stage had no users. A rising count gives a negative drop-off.
type FunnelStep struct {
	Name           string      `json:"name"`
	Order          int         `json:"order"`
	UserCount      int         `json:"user_count"`
	UsersDisplay   string      `json:"users_display"`
	Dropoff        NullPercent `json:"dropoff_percent"`
	DropoffDisplay string      `json:"dropoff_display"`
	OfTop          NullPercent `json:"percentage_of_top"`
	OfTopDisplay   string      `json:"percentage_of_top_display"`
}

// ComputeFunnel derives drop-off and percentage-of-top for stages already in funnel order
func ComputeFunnel(stages []FunnelStage) []FunnelStep {
	steps := make([]FunnelStep, 0, len(stages))
	if len(stages) == 0 {
		return steps
	}

	top := float64(stages[0].UserCount)
	for i, stage := range stages {
		step := FunnelStep{
			Name:         stage.Name,
			Order:        stage.Order,
			UserCount:    stage.UserCount,
			UsersDisplay: FormatCount(int64(stage.UserCount)),
		}

		if top != 0 {
			step.OfTop = Percent(float64(stage.UserCount) / top * 100)
		}

		if i > 0 {
			prev := float64(stages[i-1].UserCount)
			if prev != 0 {
				step.Dropoff = Percent((prev - float64(stage.UserCount)) / prev * 100)
			}
		}

		step.DropoffDisplay = step.Dropoff.String()
		step.OfTopDisplay = step.OfTop.String()
		steps = append(steps, step)
	}

	return steps
}

// BiggestDropoff returns the index of the step losing the largest share of the previous stage
func BiggestDropoff(steps []FunnelStep) (int, bool) {
	best := -1
	for i, s := range steps {
		if !s.Dropoff.Valid {
			continue
		}
		if best < 0 || s.Dropoff.Value > steps[best].Dropoff.Value {
			best = i
		}
	}
	return best, best >= 0
}

// OverallConversion is the share of the top stage that reached the last stage
func OverallConversion(steps []FunnelStep) NullPercent {
	if len(steps) == 0 {
		return NullPercent{}
	}
	return steps[len(steps)-1].OfTop
}
