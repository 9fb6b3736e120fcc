package scoring

import (
	"math"

	"github.com/mcoot/geofinder-go/internal/model"
)

// earthRadiusMiles is the mean Earth radius used for great-circle distances
const earthRadiusMiles = 3959.0

// Curve maps a guess distance in miles to a point value. The pairing of
// maximum points and decay rate materially changes gameplay, so the curve
// is injected rather than hardcoded.
type Curve interface {
	Points(distanceMiles float64) int
}

// LinearCurve decays linearly from MaxPoints at zero distance to zero at
// ZeroRadius miles and beyond
type LinearCurve struct {
	MaxPoints  int
	ZeroRadius float64
}

// DefaultLinearCurve returns the standard 5000-point / 5-mile curve
func DefaultLinearCurve() LinearCurve {
	return LinearCurve{MaxPoints: 5000, ZeroRadius: 5.0}
}

// Points implements Curve
func (c LinearCurve) Points(distanceMiles float64) int {
	if c.ZeroRadius <= 0 {
		return 0
	}
	p := int(math.Round(float64(c.MaxPoints) * (1 - distanceMiles/c.ZeroRadius)))
	if p < 0 {
		return 0
	}
	return p
}

// ExponentialCurve decays as round(MaxPoints * e^(-DecayRate * distance)),
// floored at zero
type ExponentialCurve struct {
	MaxPoints int
	DecayRate float64
}

// DefaultExponentialCurve returns the standard 5000-point / k=3 curve
func DefaultExponentialCurve() ExponentialCurve {
	return ExponentialCurve{MaxPoints: 5000, DecayRate: 3.0}
}

// Points implements Curve
func (c ExponentialCurve) Points(distanceMiles float64) int {
	p := int(math.Round(float64(c.MaxPoints) * math.Exp(-c.DecayRate*distanceMiles)))
	if p < 0 {
		return 0
	}
	return p
}

// yearStep is one band of the year-bonus step function
type yearStep struct {
	maxDiff int
	points  int
}

// Year bonus: exact match highest, decreasing in fixed steps, zero beyond
// a ten-year difference
var yearSteps = []yearStep{
	{maxDiff: 0, points: 2000},
	{maxDiff: 2, points: 1500},
	{maxDiff: 5, points: 1000},
	{maxDiff: 10, points: 500},
}

// Service computes scores for guesses against a ground-truth location
type Service struct {
	curve Curve
}

// New creates a ScoringService with the given point curve
func New(curve Curve) *Service {
	return &Service{curve: curve}
}

// Distance returns the great-circle distance in miles between two points
// (haversine formula)
func (s *Service) Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// YearPoints returns the bonus for a year guess against the actual year
func (s *Service) YearPoints(guessed, actual int) int {
	diff := guessed - actual
	if diff < 0 {
		diff = -diff
	}
	for _, step := range yearSteps {
		if diff <= step.maxDiff {
			return step.points
		}
	}
	return 0
}

// Score builds the immutable Guess record for a submission. The year bonus
// applies only when both the guessed year and the actual year are known at
// submit time; guesses are never re-scored retroactively.
func (s *Service) Score(playerID model.PlayerID, lat, lng float64, guessedYear *int, loc model.Location, actualYear *int) model.Guess {
	distance := s.Distance(lat, lng, loc.Lat, loc.Lng)
	distancePoints := s.curve.Points(distance)

	yearPoints := 0
	if guessedYear != nil && actualYear != nil {
		yearPoints = s.YearPoints(*guessedYear, *actualYear)
	}

	return model.Guess{
		PlayerID:       playerID,
		Lat:            lat,
		Lng:            lng,
		Year:           guessedYear,
		Distance:       distance,
		Points:         distancePoints + yearPoints,
		DistancePoints: distancePoints,
		YearPoints:     yearPoints,
	}
}
