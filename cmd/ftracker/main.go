package main

import (
	"fmt"
	"log"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// sensorPackage is one raw reading: a workout type tag and positional
// sensor values.
type sensorPackage struct {
	workoutType string
	data        []float64
}

var packages = []sensorPackage{
	{"SWM", []float64{720, 1, 80, 25, 40}},
	{"RUN", []float64{15000, 1, 75}},
	{"WLK", []float64{9000, 1, 75, 180}},
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("unexpected error: %s", err)
	}
}

func run() error {
	for _, p := range packages {
		workout, err := ftracker.ReadPackage(p.workoutType, p.data)
		if err != nil {
			return fmt.Errorf("cannot read sensor package: %w", err)
		}

		info, err := ftracker.TrainingInfo(workout)
		if err != nil {
			return fmt.Errorf("cannot collect training info: %w", err)
		}

		fmt.Println(info)
	}

	return nil
}
