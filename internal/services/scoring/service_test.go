package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/geofinder-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(DefaultLinearCurve())
}

// Distance tests

func (s *ServiceSuite) TestDistanceZeroForSamePoint() {
	d := s.service.Distance(38.0356, -78.5034, 38.0356, -78.5034)
	s.Zero(d)
}

func (s *ServiceSuite) TestDistanceSymmetric() {
	d1 := s.service.Distance(38.0356, -78.5034, 38.0297, -78.5009)
	d2 := s.service.Distance(38.0297, -78.5009, 38.0356, -78.5034)
	s.InDelta(d1, d2, 1e-9)
}

func (s *ServiceSuite) TestDistanceKnownPair() {
	// Rotunda to Scott Stadium is roughly two thirds of a mile
	d := s.service.Distance(38.0356, -78.5034, 38.0311, -78.5138)
	s.InDelta(0.63, d, 0.1)
}

// Linear curve tests

func (s *ServiceSuite) TestLinearCurveMaxAtZero() {
	curve := DefaultLinearCurve()
	s.Equal(5000, curve.Points(0))
}

func (s *ServiceSuite) TestLinearCurveZeroAtRadius() {
	curve := DefaultLinearCurve()
	s.Equal(0, curve.Points(5.0))
	s.Equal(0, curve.Points(12.0))
}

func (s *ServiceSuite) TestLinearCurveMidpoint() {
	curve := DefaultLinearCurve()
	s.Equal(2500, curve.Points(2.5))
}

func (s *ServiceSuite) TestLinearCurveMonotonic() {
	curve := DefaultLinearCurve()
	prev := curve.Points(0)
	for _, d := range []float64{0.1, 0.5, 1, 2, 3, 4, 5, 6} {
		p := curve.Points(d)
		s.LessOrEqual(p, prev, "points must not increase with distance %v", d)
		prev = p
	}
}

// Exponential curve tests

func (s *ServiceSuite) TestExponentialCurveMaxAtZero() {
	curve := DefaultExponentialCurve()
	s.Equal(5000, curve.Points(0))
}

func (s *ServiceSuite) TestExponentialCurveRoundsToZeroFarOut() {
	curve := DefaultExponentialCurve()
	s.Equal(0, curve.Points(4.0))
	s.Equal(0, curve.Points(100.0))
}

func (s *ServiceSuite) TestExponentialCurveMonotonic() {
	curve := DefaultExponentialCurve()
	prev := curve.Points(0)
	for _, d := range []float64{0.1, 0.25, 0.5, 1, 2, 3, 5} {
		p := curve.Points(d)
		s.LessOrEqual(p, prev)
		prev = p
	}
}

// Year bonus tests

func (s *ServiceSuite) TestYearPointsExactMatch() {
	s.Equal(2000, s.service.YearPoints(2015, 2015))
}

func (s *ServiceSuite) TestYearPointsSteps() {
	s.Equal(1500, s.service.YearPoints(2013, 2015))
	s.Equal(1000, s.service.YearPoints(2010, 2015))
	s.Equal(500, s.service.YearPoints(2005, 2015))
}

func (s *ServiceSuite) TestYearPointsZeroBeyondCutoff() {
	s.Equal(0, s.service.YearPoints(2000, 2015))
	s.Equal(0, s.service.YearPoints(2030, 2015))
}

func (s *ServiceSuite) TestYearPointsSymmetricInDifference() {
	s.Equal(s.service.YearPoints(2013, 2015), s.service.YearPoints(2017, 2015))
}

// Score tests

func (s *ServiceSuite) TestScorePerfectGuess() {
	loc := model.Location{Name: "The Rotunda", Lat: 38.0356, Lng: -78.5034}
	guess := s.service.Score("p1", 38.0356, -78.5034, nil, loc, nil)

	s.Zero(guess.Distance)
	s.Equal(5000, guess.Points)
	s.Equal(5000, guess.DistancePoints)
	s.Zero(guess.YearPoints)
}

func (s *ServiceSuite) TestScoreYearBonusAdditive() {
	loc := model.Location{Name: "The Rotunda", Lat: 38.0356, Lng: -78.5034}
	year := 2015
	actual := 2015
	guess := s.service.Score("p1", 38.0356, -78.5034, &year, loc, &actual)

	s.Equal(7000, guess.Points)
	s.Equal(5000, guess.DistancePoints)
	s.Equal(2000, guess.YearPoints)
}

func (s *ServiceSuite) TestScoreNoYearBonusWithoutActualYear() {
	loc := model.Location{Name: "The Rotunda", Lat: 38.0356, Lng: -78.5034}
	year := 2015
	guess := s.service.Score("p1", 38.0356, -78.5034, &year, loc, nil)

	s.Zero(guess.YearPoints)
	s.Equal(guess.DistancePoints, guess.Points)
}

func (s *ServiceSuite) TestScoreCloserGuessNeverScoresLower() {
	loc := model.Location{Name: "The Corner", Lat: 38.0343, Lng: -78.5010}
	near := s.service.Score("p1", 38.0340, -78.5012, nil, loc, nil)
	far := s.service.Score("p2", 38.0250, -78.4790, nil, loc, nil)

	s.Less(near.Distance, far.Distance)
	s.GreaterOrEqual(near.Points, far.Points)
}
