package engine

import (
	"time"

	"github.com/google/uuid"
)

const (
	// BarSize is the XP width of one level bar.
	BarSize = 500

	// XPPerMinute converts logged study minutes into XP.
	XPPerMinute = 1

	// DailyBonusXP is awarded once per day when every quest is done.
	DailyBonusXP = 100

	// HistoryLimit caps the audit log; oldest entries are dropped.
	HistoryLimit = 100

	// HistoryRenderLimit is how many entries the render snapshot carries.
	HistoryRenderLimit = 30

	// WeekWindow is the number of calendar days in the weekly aggregate.
	WeekWindow = 7
)

// State is the single persisted aggregate. All mutation goes through
// Service methods; field names are the serialized blob contract.
type State struct {
	SchemaVersion    int                   `json:"schemaVersion"`
	TotalXP          int                   `json:"totalXp"`
	LastDayKey       string                `json:"lastDayKey"`
	Streak           int                   `json:"streak"`
	LastActiveDayKey string                `json:"lastActiveDayKey"`
	Subjects         []string              `json:"subjects"`
	Days             map[string]*DayRecord `json:"days"`
	Quests           []Quest               `json:"quests"`
	History          []LogEntry            `json:"history"`
}

// DayRecord aggregates one calendar day.
type DayRecord struct {
	MinutesTotal int            `json:"minutesTotal"`
	XPTotal      int            `json:"xpTotal"`
	Subjects     map[string]int `json:"subjects"`
}

// Quest is a fixed daily checklist item; done resets on rollover.
type Quest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// LogEntry is one audit log record. Delta is the XP change (0 for
// informational entries).
type LogEntry struct {
	ID    string `json:"id"`
	Time  string `json:"time"`
	Text  string `json:"text"`
	Delta int    `json:"delta"`
}

// Reward is a catalog item purchasable with XP.
type Reward struct {
	ID    string
	Title string
	Desc  string
	Cost  int
}

// Catalog is the fixed reward store.
var Catalog = []Reward{
	{ID: "coffee", Title: "Kahve", Desc: "Make / drink a coffee", Cost: 50},
	{ID: "yt30", Title: "30 dk YouTube", Desc: "Reward: 30 min of video", Cost: 200},
	{ID: "game30", Title: "30 dk Gaming", Desc: "Reward: 30 min of gaming", Cost: 200},
}

// RewardByID returns the catalog entry, or nil if unknown.
func RewardByID(id string) *Reward {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

func defaultSubjects() []string {
	return []string{"Matematik", "Fizik", "Kimya", "Biyoloji", "Paragraf/Türkçe"}
}

func defaultQuests() []Quest {
	return []Quest{
		{ID: "q1", Title: "Paragraf / Türkçe"},
		{ID: "q2", Title: "Matematik"},
		{ID: "q3", Title: "Fizik"},
		{ID: "q4", Title: "Kimya / Biyoloji"},
	}
}

// defaultState builds a fresh first-run state for the given moment.
func defaultState(now time.Time) *State {
	today := DayKey(now)
	return &State{
		SchemaVersion: CurrentSchemaVersion,
		LastDayKey:    today,
		Subjects:      defaultSubjects(),
		Days: map[string]*DayRecord{
			today: newDayRecord(),
		},
		Quests:  defaultQuests(),
		History: []LogEntry{},
	}
}

func newDayRecord() *DayRecord {
	return &DayRecord{Subjects: map[string]int{}}
}

// day returns the record for key, creating it lazily.
func (st *State) day(key string) *DayRecord {
	d, ok := st.Days[key]
	if !ok {
		d = newDayRecord()
		st.Days[key] = d
	}
	if d.Subjects == nil {
		d.Subjects = map[string]int{}
	}
	return d
}

// AllQuestsDone reports whether every quest is checked off.
func (st *State) AllQuestsDone() bool {
	for _, q := range st.Quests {
		if !q.Done {
			return false
		}
	}
	return true
}

// prependLog pushes a new audit entry to the front and clamps the log.
func (st *State) prependLog(now time.Time, text string, delta int) {
	e := LogEntry{
		ID:    uuid.NewString(),
		Time:  logTimestamp(now),
		Text:  text,
		Delta: delta,
	}
	st.History = append([]LogEntry{e}, st.History...)
	if len(st.History) > HistoryLimit {
		st.History = st.History[:HistoryLimit]
	}
}
