package service

import (
	"fmt"
	"math"

	"github.com/lshigami/toeic-practice-api/internal/dto"
)

const (
	MaxSectionRawScore    = 100
	MinSectionScaledScore = 5
	MaxSectionScaledScore = 495
)

type scorePoint struct {
	raw    int
	scaled float64
}

// Approximate TOEIC L&R conversion. Reading is scored a little harder than listening
// for the same number of correct answers.
var (
	listeningTable = []scorePoint{
		{0, 5}, {6, 5}, {20, 80}, {40, 190}, {60, 300}, {75, 380}, {90, 460}, {96, 495}, {100, 495},
	}
	readingTable = []scorePoint{
		{0, 5}, {15, 5}, {25, 80}, {45, 190}, {65, 300}, {80, 385}, {95, 460}, {100, 495},
	}
)

type ScoreConverterService interface {
	ConvertListening(correct int) (int, error)
	ConvertReading(correct int) (int, error)
	Estimate(correctListening, correctReading int) (*dto.EstimatedScore, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) ConvertListening(correct int) (int, error) {
	return convert(listeningTable, correct)
}

func (s *scoreConverterServiceImpl) ConvertReading(correct int) (int, error) {
	return convert(readingTable, correct)
}

func (s *scoreConverterServiceImpl) Estimate(correctListening, correctReading int) (*dto.EstimatedScore, error) {
	listening, err := s.ConvertListening(correctListening)
	if err != nil {
		return nil, err
	}
	reading, err := s.ConvertReading(correctReading)
	if err != nil {
		return nil, err
	}
	return &dto.EstimatedScore{Listening: listening, Reading: reading, Total: listening + reading}, nil
}

// convert interpolates linearly between table points and rounds to a multiple of 5,
// the granularity of official section scores.
func convert(table []scorePoint, raw int) (int, error) {
	if raw < 0 || raw > MaxSectionRawScore {
		return 0, fmt.Errorf("raw score %d is out of valid range (0-%d)", raw, MaxSectionRawScore)
	}

	scaled := table[len(table)-1].scaled
	for i := 1; i < len(table); i++ {
		lo, hi := table[i-1], table[i]
		if raw > hi.raw {
			continue
		}
		ratio := float64(raw-lo.raw) / float64(hi.raw-lo.raw)
		scaled = lo.scaled + ratio*(hi.scaled-lo.scaled)
		break
	}

	rounded := int(math.Round(scaled/5) * 5)
	if rounded < MinSectionScaledScore {
		rounded = MinSectionScaledScore
	}
	if rounded > MaxSectionScaledScore {
		rounded = MaxSectionScaledScore
	}
	return rounded, nil
}
