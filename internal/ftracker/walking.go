package ftracker

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a pole-walking session, action counts steps.
type SportsWalking struct {
	Training
	height float64 // cm
}

func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Training: NewTraining("SportsWalking", action, duration, weight),
		height:   height,
	}
}

// SpentCalories keeps the floor division of squared speed by height from
// the source formula. For low speeds the second term floors to zero.
func (w SportsWalking) SpentCalories() (float64, error) {
	speed := w.MeanSpeed()
	calories := (walkingCaloriesWeightMultiplier*w.weight +
		math.Floor(speed*speed/w.height)*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * minInH
	return calories, nil
}
