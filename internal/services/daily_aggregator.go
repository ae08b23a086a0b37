package services

import (
	"math"
	"sort"
	"time"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
)

// DayBucket groups every food log sharing one calendar date. Entries keep
// their input order; TotalCalories sums the finite calorie values of the
// constituent entries.
type DayBucket struct {
	DateKey       string           `json:"dateKey"`
	DisplayLabel  string           `json:"displayLabel"`
	TotalCalories float64          `json:"totalCalories"`
	Entries       []models.FoodLog `json:"entries"`
}

type SummaryStats struct {
	AverageCalories float64
	MaxCalories     float64
	DayCount        int
}

// AggregateDaily buckets entries by calendar date in the given location and
// returns the buckets most recent day first. The input slice is never
// mutated, so repeated calls over the same snapshot are identical.
func AggregateDaily(entries []models.FoodLog, location *time.Location) []DayBucket {
	if location == nil {
		location = time.UTC
	}

	buckets := make([]DayBucket, 0)
	bucketIndex := make(map[string]int)

	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		key := day.Format(DayKeyLayout)

		position, seen := bucketIndex[key]
		if !seen {
			position = len(buckets)
			bucketIndex[key] = position
			buckets = append(buckets, DayBucket{
				DateKey:      key,
				DisplayLabel: day.Format(displayLabelLayout),
				Entries:      make([]models.FoodLog, 0, 4),
			})
		}

		bucket := &buckets[position]
		if calories := entry.Calories; !math.IsNaN(calories) && !math.IsInf(calories, 0) {
			bucket.TotalCalories += calories
		}
		bucket.Entries = append(bucket.Entries, entry)
	}

	// Date keys are unique per bucket, so descending order is total.
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].DateKey > buckets[j].DateKey
	})

	return buckets
}

// Summarize reduces buckets to lifetime statistics. A zero DayCount means
// no data; Average and Max are meaningless then and the caller renders
// them as not available.
func Summarize(buckets []DayBucket) SummaryStats {
	stats := SummaryStats{DayCount: len(buckets)}
	if stats.DayCount == 0 {
		return stats
	}

	sum := 0.0
	maxTotal := buckets[0].TotalCalories
	for _, bucket := range buckets {
		sum += bucket.TotalCalories
		if bucket.TotalCalories > maxTotal {
			maxTotal = bucket.TotalCalories
		}
	}

	stats.AverageCalories = sum / float64(stats.DayCount)
	stats.MaxCalories = maxTotal
	return stats
}
