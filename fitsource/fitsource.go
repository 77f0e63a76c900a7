// Package fitsource converts recorded FIT activity files into sensor
// packages (workout code plus ordered readings) for the workout registry.
package fitsource

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tormoder/fit"
)

const secondsPerHour = 3600.0

// ErrUnsupportedSport reports a FIT session whose sport has no workout code.
var ErrUnsupportedSport = errors.New("unsupported sport")

// Athlete carries readings a FIT session does not provide.
type Athlete struct {
	WeightKG float64
	HeightCM float64
}

// FromFile decodes a FIT activity file and converts its first session into
// one sensor package.
func FromFile(path string, athlete Athlete) (string, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return "", nil, fmt.Errorf("decode FIT file: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return "", nil, fmt.Errorf("activity FIT expected: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return "", nil, fmt.Errorf("activity file has no session message")
	}
	return FromSession(activity.Sessions[0], athlete)
}

// FromSession converts one FIT session message into a sensor package.
// Readings follow registry order: action count, duration in hours, weight
// in kg, then the variant-specific readings.
func FromSession(session *fit.SessionMsg, athlete Athlete) (string, []float64, error) {
	durationHours := session.GetTotalTimerTimeScaled() / secondsPerHour
	cycles := float64(validUint32(session.TotalCycles))

	switch session.Sport {
	case fit.SportRunning:
		// One cycle is two steps.
		return "RUN", []float64{cycles * 2, durationHours, athlete.WeightKG}, nil
	case fit.SportWalking:
		return "WLK", []float64{cycles * 2, durationHours, athlete.WeightKG, athlete.HeightCM}, nil
	case fit.SportSwimming:
		poolLength := session.GetPoolLengthScaled()
		laps := float64(validUint16(session.NumActiveLengths))
		return "SWM", []float64{cycles, durationHours, athlete.WeightKG, poolLength, laps}, nil
	default:
		return "", nil, fmt.Errorf("%w: %v", ErrUnsupportedSport, session.Sport)
	}
}

func validUint16(v uint16) uint16 {
	if v == math.MaxUint16 {
		return 0
	}
	return v
}

func validUint32(v uint32) uint32 {
	if v == math.MaxUint32 {
		return 0
	}
	return v
}
