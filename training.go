// Package ftracker computes derived workout metrics (distance, mean speed,
// spent calories) from raw sensor readings for the three supported workout
// kinds and renders them as a one-line summary.
package ftracker

const (
	stepLengthM     = 0.65
	swimStepLengthM = 1.38
	mInKm           = 1000
	minInHour       = 60

	runningSpeedMultiplier = 18
	runningSpeedShift      = 1.79

	walkingWeightMultiplier      = 0.035
	walkingSpeedHeightMultiplier = 0.029
	kmhToMps                     = 0.278
	cmInM                        = 100

	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

// Training is one recorded workout. Every variant computes its own spent
// calories; distance and mean speed have a shared step-based default that
// Swimming replaces with pool-based formulas.
type Training interface {
	// Label returns the human-readable workout type name.
	Label() string
	// DurationHours returns the workout duration in hours.
	DurationHours() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned calories in kcal.
	SpentCalories() float64
}

// Running is a running workout built from (action, duration, weight) readings.
type Running struct {
	Action   int     // steps taken
	Duration float64 // hours
	Weight   float64 // kg
}

func (r Running) Label() string          { return "Running" }
func (r Running) DurationHours() float64 { return r.Duration }

func (r Running) Distance() float64 {
	return stepDistance(r.Action, stepLengthM)
}

func (r Running) MeanSpeed() float64 {
	return safeDiv(r.Distance(), r.Duration)
}

func (r Running) SpentCalories() float64 {
	return (runningSpeedMultiplier*r.MeanSpeed() + runningSpeedShift) *
		r.Weight / mInKm * r.Duration * minInHour
}

// SportsWalking is a walking workout; it additionally needs the athlete's
// height for the calorie formula.
type SportsWalking struct {
	Action   int     // steps taken
	Duration float64 // hours
	Weight   float64 // kg
	Height   float64 // cm
}

func (w SportsWalking) Label() string          { return "SportsWalking" }
func (w SportsWalking) DurationHours() float64 { return w.Duration }

func (w SportsWalking) Distance() float64 {
	return stepDistance(w.Action, stepLengthM)
}

func (w SportsWalking) MeanSpeed() float64 {
	return safeDiv(w.Distance(), w.Duration)
}

func (w SportsWalking) SpentCalories() float64 {
	speedMps := w.MeanSpeed() * kmhToMps
	return (walkingWeightMultiplier*w.Weight +
		safeDiv(speedMps*speedMps, w.Height/cmInM)*walkingSpeedHeightMultiplier*w.Weight) *
		(w.Duration * minInHour)
}

// Swimming is a pool workout; mean speed comes from pool geometry rather
// than stroke count, and strokes use the longer swim step length.
type Swimming struct {
	Action     int     // strokes taken
	Duration   float64 // hours
	Weight     float64 // kg
	LengthPool float64 // pool length, m
	CountPool  int     // laps swum
}

func (s Swimming) Label() string          { return "Swimming" }
func (s Swimming) DurationHours() float64 { return s.Duration }

func (s Swimming) Distance() float64 {
	return stepDistance(s.Action, swimStepLengthM)
}

func (s Swimming) MeanSpeed() float64 {
	return safeDiv(s.LengthPool*float64(s.CountPool)/mInKm, s.Duration)
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) *
		swimmingWeightMultiplier * s.Weight * s.Duration
}

func stepDistance(action int, stepLength float64) float64 {
	return float64(action) * stepLength / mInKm
}

func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
