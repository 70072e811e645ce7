package engine

import (
	"fmt"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

// ValidateRecord rejects raw check-in values outside their declared ranges.
// The engine never clamps what callers submit; clamping is reserved for its
// own derived terms.
func ValidateRecord(rec *types.WellbeingRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidInput)
	}
	if err := validateScale("mood_score", rec.MoodScore); err != nil {
		return err
	}
	if err := validateScale("energy_score", rec.EnergyScore); err != nil {
		return err
	}
	if err := validateScale("stress_score", rec.StressScore); err != nil {
		return err
	}
	if err := validateScale("sleep_quality", rec.SleepQuality); err != nil {
		return err
	}
	if rec.WorkHours < 0 || rec.WorkHours > 24 {
		return fmt.Errorf("%w: work_hours %.2f outside [0,24]", ErrInvalidInput, rec.WorkHours)
	}
	if rec.SentimentScore != nil && (*rec.SentimentScore < -1 || *rec.SentimentScore > 1) {
		return fmt.Errorf("%w: sentiment_score %.2f outside [-1,1]", ErrInvalidInput, *rec.SentimentScore)
	}
	return nil
}

func ValidateHistory(history []*types.WellbeingRecord) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: empty history", ErrInsufficientData)
	}
	for i, rec := range history {
		if err := ValidateRecord(rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

func validateScale(field string, v int) error {
	if v < 1 || v > 10 {
		return fmt.Errorf("%w: %s %d outside [1,10]", ErrInvalidInput, field, v)
	}
	return nil
}
