package ftracker

const (
	swimmingLenStep                  = 1.38 // metres covered by one stroke
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool session, action counts arm strokes.
type Swimming struct {
	Training
	lengthPool float64 // metres
	countPool  float64 // pool lengths swum
}

func NewSwimming(action int, duration, weight, lengthPool, countPool float64) Swimming {
	tr := NewTraining("Swimming", action, duration, weight)
	tr.lenStep = swimmingLenStep

	return Swimming{
		Training:   tr,
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// MeanSpeed uses pool geometry instead of the stroke count.
func (s Swimming) MeanSpeed() float64 {
	if s.duration <= 0 {
		return 0
	}
	return s.lengthPool * s.countPool / mInKm / s.duration
}

func (s Swimming) SpentCalories() (float64, error) {
	calories := (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight
	return calories, nil
}
