package ftracker

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType is returned for a type tag missing from the
	// factory table.
	ErrUnknownWorkoutType = errors.New("unknown workout type")

	// ErrBadPackage is returned when a sensor package carries the wrong
	// number of values for its workout type.
	ErrBadPackage = errors.New("malformed sensor package")
)

type workoutFactory struct {
	arity int
	build func(data []float64) Workout
}

var workoutFactories = map[string]workoutFactory{
	"RUN": {3, func(d []float64) Workout {
		return NewRunning(int(d[0]), d[1], d[2])
	}},
	"WLK": {4, func(d []float64) Workout {
		return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
	}},
	"SWM": {5, func(d []float64) Workout {
		return NewSwimming(int(d[0]), d[1], d[2], d[3], d[4])
	}},
}

// ReadPackage builds a workout from one sensor package: a type tag and
// values applied positionally in constructor order. The value count is
// checked against the resolved kind before construction.
func ReadPackage(workoutType string, data []float64) (Workout, error) {
	factory, ok := workoutFactories[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}

	if len(data) != factory.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d",
			ErrBadPackage, workoutType, factory.arity, len(data))
	}

	return factory.build(data), nil
}
