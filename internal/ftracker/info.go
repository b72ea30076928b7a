package ftracker

import "fmt"

// InfoMessage holds the computed results of one finished workout.
type InfoMessage struct {
	TrainingType string  // display name of the workout kind
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // mean speed, km/h
	Calories     float64 // kcal
}

// String renders the message in the fixed report layout, every number
// with three decimal digits.
func (m InfoMessage) String() string {
	return fmt.Sprintf(
		"Workout type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}
