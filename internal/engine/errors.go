package engine

import (
	"errors"
	"fmt"
)

// InsufficientXPError is returned by SpendXP when the balance cannot cover
// the cost. The state is left unchanged.
type InsufficientXPError struct {
	Cost    int
	Balance int
}

func (e InsufficientXPError) Error() string {
	return fmt.Sprintf("not enough XP: need %d, have %d", e.Cost, e.Balance)
}

// InvalidMinutesError is returned by RecordWork for non-positive minutes.
type InvalidMinutesError struct {
	Minutes int
}

func (e InvalidMinutesError) Error() string {
	return fmt.Sprintf("minutes must be at least 1, got %d", e.Minutes)
}

var (
	// ErrQuestsIncomplete rejects a daily bonus claim while any quest is open.
	ErrQuestsIncomplete = errors.New("all daily quests must be done before claiming the bonus")

	// ErrBonusClaimed rejects a second bonus claim on the same day.
	ErrBonusClaimed = errors.New("daily bonus already claimed today")

	// ErrEmptySubject rejects a subject name that is empty after normalization.
	ErrEmptySubject = errors.New("subject name is empty")

	// ErrSubjectExists rejects a case-insensitive duplicate subject.
	ErrSubjectExists = errors.New("subject already exists")
)
