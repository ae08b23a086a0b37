package services

const (
	// ChartWindowDays bounds the trend chart, not the history: callers that
	// need lifetime stats read the full bucket list.
	ChartWindowDays = 7

	fallbackAxisMax    = 3000.0
	goalHeadroomFactor = 1.2
)

type ChartBar struct {
	DateKey        string  `json:"dateKey"`
	Label          string  `json:"label"`
	TotalCalories  float64 `json:"totalCalories"`
	HeightFraction float64 `json:"heightFraction"`
	OverGoal       bool    `json:"overGoal"`
}

type ChartScale struct {
	AxisMax          float64    `json:"axisMax"`
	HasGoalLine      bool       `json:"hasGoalLine"`
	GoalLineFraction float64    `json:"goalLineFraction"`
	Bars             []ChartBar `json:"bars"`
}

// BuildChartScale sizes the trend chart for the 7 most recent buckets.
// Buckets arrive most recent first (AggregateDaily order); bars come out
// oldest first, the order they are drawn in. The axis maximum is the
// larger of the tallest bar and goal*1.2 (3000 when no goal is set), so
// the goal line and every bar fit without clipping.
func BuildChartScale(buckets []DayBucket, goalValue float64, hasGoal bool) ChartScale {
	window := buckets
	if len(window) > ChartWindowDays {
		window = window[:ChartWindowDays]
	}

	axisMax := fallbackAxisMax
	goalPresent := hasGoal && goalValue > 0
	if goalPresent {
		axisMax = goalValue * goalHeadroomFactor
	}
	for _, bucket := range window {
		if bucket.TotalCalories > axisMax {
			axisMax = bucket.TotalCalories
		}
	}

	scale := ChartScale{
		AxisMax:     axisMax,
		HasGoalLine: axisMax > 0 && goalPresent,
		Bars:        make([]ChartBar, 0, len(window)),
	}
	if scale.HasGoalLine {
		scale.GoalLineFraction = goalValue / axisMax
	}

	for index := len(window) - 1; index >= 0; index-- {
		bucket := window[index]
		bar := ChartBar{
			DateKey:       bucket.DateKey,
			Label:         bucket.DisplayLabel,
			TotalCalories: bucket.TotalCalories,
			OverGoal:      goalPresent && bucket.TotalCalories > goalValue,
		}
		if axisMax > 0 {
			bar.HeightFraction = bucket.TotalCalories / axisMax
		}
		scale.Bars = append(scale.Bars, bar)
	}

	return scale
}
