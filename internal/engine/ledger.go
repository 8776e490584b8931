package engine

import (
	"context"
	"fmt"
	"strings"

	"studyquest/internal/storage"
)

// WorkResult reports the effect of one RecordWork call.
type WorkResult struct {
	Minutes      int
	XPAwarded    int
	Streak       int
	TodayMinutes int
	TotalXP      int
}

// RecordWork logs minutes of study against a subject: it increments today's
// record, runs the streak evaluator and awards minutes * XPPerMinute XP.
// Subject may be empty; the minutes then count toward the day total only.
func (s *Service) RecordWork(ctx context.Context, minutes int, subject string) (*WorkResult, error) {
	if minutes < 1 {
		return nil, InvalidMinutesError{Minutes: minutes}
	}
	s.beginMutation()

	now := s.clock.Now()
	xp := minutes * XPPerMinute

	day := s.state.day(DayKey(now))
	day.MinutesTotal += minutes
	day.XPTotal += xp
	if subject != "" {
		day.Subjects[subject] += minutes
	}

	maybeUpdateStreak(s.state, now)

	label := subject
	if label == "" {
		label = "general"
	}
	s.state.TotalXP += xp
	s.state.prependLog(now, fmt.Sprintf("study (%s): %d min (+%d XP)", label, minutes, xp), xp)

	if err := s.commit(ctx); err != nil {
		return nil, err
	}
	return &WorkResult{
		Minutes:      minutes,
		XPAwarded:    xp,
		Streak:       s.state.Streak,
		TodayMinutes: day.MinutesTotal,
		TotalXP:      s.state.TotalXP,
	}, nil
}

// AwardXP credits amount XP with an audit entry. Zero is a no-op.
func (s *Service) AwardXP(ctx context.Context, amount int, reason string) error {
	if amount == 0 {
		return nil
	}
	s.beginMutation()
	s.state.TotalXP += amount
	s.state.prependLog(s.clock.Now(), reason, amount)
	return s.commit(ctx)
}

// SpendXP debits cost XP. It fails with InsufficientXPError and leaves the
// state unchanged when the balance cannot cover the cost.
func (s *Service) SpendXP(ctx context.Context, cost int, reason string) error {
	s.beginMutation()
	if s.state.TotalXP < cost {
		return InsufficientXPError{Cost: cost, Balance: s.state.TotalXP}
	}
	s.state.TotalXP -= cost
	s.state.prependLog(s.clock.Now(), reason, -cost)
	return s.commit(ctx)
}

// BuyReward spends XP on a catalog item.
func (s *Service) BuyReward(ctx context.Context, id string) (*Reward, error) {
	r := RewardByID(id)
	if r == nil {
		return nil, fmt.Errorf("unknown reward %q", id)
	}
	if err := s.SpendXP(ctx, r.Cost, fmt.Sprintf("reward purchased: %s", r.Title)); err != nil {
		return nil, err
	}
	return r, nil
}

// NormalizeSubject trims and collapses internal whitespace runs.
func NormalizeSubject(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// AddSubject appends a new subject. The name is whitespace-normalized;
// empty or case-insensitive duplicate names are rejected without mutation.
// Returns the normalized name.
func (s *Service) AddSubject(ctx context.Context, name string) (string, error) {
	n := NormalizeSubject(name)
	if n == "" {
		return "", ErrEmptySubject
	}
	for _, existing := range s.state.Subjects {
		if strings.EqualFold(existing, n) {
			return "", ErrSubjectExists
		}
	}
	s.beginMutation()
	s.state.Subjects = append(s.state.Subjects, n)
	s.state.prependLog(s.clock.Now(), fmt.Sprintf("subject added: %s", n), 0)
	if err := s.commit(ctx); err != nil {
		return "", err
	}
	return n, nil
}

// ToggleQuest sets a quest's done flag. No audit entry.
func (s *Service) ToggleQuest(ctx context.Context, id string, done bool) error {
	s.beginMutation()
	for i := range s.state.Quests {
		if s.state.Quests[i].ID == id {
			s.state.Quests[i].Done = done
			return s.commit(ctx)
		}
	}
	return fmt.Errorf("quest %q not found", id)
}

// ClaimDailyBonus awards DailyBonusXP once per day, and only when every
// quest is done. The claim is recorded as a per-day flag in the gateway.
func (s *Service) ClaimDailyBonus(ctx context.Context) (int, error) {
	s.beginMutation()
	if !s.state.AllQuestsDone() {
		return 0, ErrQuestsIncomplete
	}

	now := s.clock.Now()
	flagKey := storage.BonusFlagKey(DayKey(now))
	v, ok, err := s.store.Get(ctx, flagKey)
	if err != nil {
		return 0, fmt.Errorf("bonus flag: %w", err)
	}
	if ok && v == "1" {
		return 0, ErrBonusClaimed
	}
	if err := s.store.Set(ctx, flagKey, "1"); err != nil {
		return 0, fmt.Errorf("bonus flag: %w", err)
	}

	s.state.TotalXP += DailyBonusXP
	s.state.prependLog(now, fmt.Sprintf("daily quest bonus (+%d XP)", DailyBonusXP), DailyBonusXP)
	if err := s.commit(ctx); err != nil {
		return 0, err
	}
	return DailyBonusXP, nil
}

// NewDay force-resets today regardless of the date changing: today's record
// is emptied, quest flags reset and today's bonus claim cleared.
func (s *Service) NewDay(ctx context.Context) error {
	s.beginMutation()
	now := s.clock.Now()
	today := DayKey(now)

	s.state.Days[today] = newDayRecord()
	for i := range s.state.Quests {
		s.state.Quests[i].Done = false
	}
	if err := s.store.Delete(ctx, storage.BonusFlagKey(today)); err != nil {
		return fmt.Errorf("clear bonus flag: %w", err)
	}
	s.state.prependLog(now, "manual new day", 0)
	return s.commit(ctx)
}

// ClearHistory empties the audit log.
func (s *Service) ClearHistory(ctx context.Context) error {
	s.beginMutation()
	s.state.History = []LogEntry{}
	return s.commit(ctx)
}

// Reset replaces the whole state with a first-run default. The caller is
// responsible for user confirmation.
func (s *Service) Reset(ctx context.Context) error {
	now := s.clock.Now()
	if err := s.store.Delete(ctx, storage.BonusFlagKey(DayKey(now))); err != nil {
		return fmt.Errorf("clear bonus flag: %w", err)
	}
	s.state = defaultState(now)
	return s.commit(ctx)
}
