package ftracker

import (
	"errors"
	"fmt"
)

const (
	lenStep = 0.65 // metres covered by one step
	mInKm   = 1000
	minInH  = 60
)

// ErrCaloriesNotImplemented is returned when SpentCalories is called on
// the bare Training base instead of a concrete workout kind.
var ErrCaloriesNotImplemented = errors.New("spent calories calculation is not implemented")

// Workout is the capability set every workout kind provides. Concrete
// kinds embed Training for the shared math and override SpentCalories.
type Workout interface {
	Kind() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
}

// Training holds the sensor readings shared by all workout kinds.
type Training struct {
	kind     string
	action   int     // number of steps or strokes
	duration float64 // hours
	weight   float64 // kg
	lenStep  float64 // metres covered by one action
}

// NewTraining builds the shared part of a workout with the default step
// length. Kinds with a different action length adjust it themselves.
func NewTraining(kind string, action int, duration, weight float64) Training {
	return Training{
		kind:     kind,
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}
}

func (t Training) Kind() string { return t.kind }

func (t Training) Duration() float64 { return t.duration }

// Distance returns the covered distance in km.
func (t Training) Distance() float64 {
	return float64(t.action) * t.lenStep / mInKm
}

// MeanSpeed returns the mean speed in km/h, or 0 for a nonpositive
// duration.
func (t Training) MeanSpeed() float64 {
	if t.duration <= 0 {
		return 0
	}
	return t.Distance() / t.duration
}

// SpentCalories on the base always fails: every concrete kind carries
// its own formula.
func (t Training) SpentCalories() (float64, error) {
	return 0, fmt.Errorf("%w for workout kind %q", ErrCaloriesNotImplemented, t.kind)
}

// TrainingInfo derives the full result record for one workout. The
// record is produced only when the calorie formula succeeds.
func TrainingInfo(w Workout) (InfoMessage, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}

	return InfoMessage{
		TrainingType: w.Kind(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     calories,
	}, nil
}
