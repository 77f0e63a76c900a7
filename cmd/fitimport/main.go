package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ftracker "github.com/lucasjlepore/fit-tracker"
	"github.com/lucasjlepore/fit-tracker/fitsource"
)

func main() {
	var (
		fitPath = flag.String("fit", "", "Path to input .fit activity file")
		weight  = flag.Float64("weight", 0, "Athlete weight in kg")
		height  = flag.Float64("height", 0, "Athlete height in cm (walking only)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --fit activity.fit --weight 75 [--height 180]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if strings.TrimSpace(*fitPath) == "" {
		flag.Usage()
		os.Exit(2)
	}

	code, readings, err := fitsource.FromFile(*fitPath, fitsource.Athlete{
		WeightKG: *weight,
		HeightCM: *height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fitimport failed: %v\n", err)
		os.Exit(1)
	}

	training, err := ftracker.ReadPackage(code, readings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fitimport failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(ftracker.Summarize(training).Message())
}
