package ftracker

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a running session, action counts steps.
type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) Running {
	return Running{NewTraining("Running", action, duration, weight)}
}

func (r Running) SpentCalories() (float64, error) {
	calories := (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * (r.duration * minInH)
	return calories, nil
}
