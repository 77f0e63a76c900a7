package main

import (
	"fmt"
	"os"

	ftracker "github.com/lucasjlepore/fit-tracker"
)

type sensorPackage struct {
	code     string
	readings []float64
}

func main() {
	packages := []sensorPackage{
		{"SWM", []float64{720, 1, 80, 25, 40}},
		{"RUN", []float64{15000, 1, 75}},
		{"WLK", []float64{9000, 1, 75, 180}},
	}

	for _, pkg := range packages {
		training, err := ftracker.ReadPackage(pkg.code, pkg.readings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ftracker failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(ftracker.Summarize(training).Message())
	}
}
