package ftracker_test

// Expected values are recomputed here independently of the package under
// test, from the same source formulas.

const (
	lenStep = 0.65
	mInKm   = 1000
	minInH  = 60

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

func distance(action int) float64 {
	return float64(action) * lenStep / mInKm
}

func meanSpeed(action int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return distance(action) / duration
}

func swimmingMeanSpeed(lengthPool, countPool, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return lengthPool * countPool / mInKm / duration
}
