package engine

import "encoding/json"

// CurrentSchemaVersion tags persisted state blobs. Blobs written before
// versioning existed carry no tag and decode as version 0.
const CurrentSchemaVersion = 1

// migrations[v] upgrades a decoded state from schema version v to v+1.
// Each step only backfills; it never drops data.
var migrations = []func(*State){
	migrateV0,
}

// migrateV0 upgrades untagged legacy blobs: any field subset may be missing.
func migrateV0(st *State) {
	if st.Days == nil {
		st.Days = map[string]*DayRecord{}
	}
	for _, d := range st.Days {
		if d.Subjects == nil {
			d.Subjects = map[string]int{}
		}
	}
	if st.Subjects == nil {
		st.Subjects = defaultSubjects()
	}
	if st.Quests == nil {
		st.Quests = defaultQuests()
	}
	if st.History == nil {
		st.History = []LogEntry{}
	}
	if st.Streak < 0 {
		st.Streak = 0
	}
}

// decodeState parses a persisted blob and runs the migration chain. It
// returns nil when the blob cannot be used (parse failure, or a schema
// version this build does not know); the caller falls back to defaults.
func decodeState(raw string) *State {
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil
	}
	if st.SchemaVersion < 0 || st.SchemaVersion > CurrentSchemaVersion {
		return nil
	}
	for v := st.SchemaVersion; v < CurrentSchemaVersion; v++ {
		migrations[v](&st)
	}
	st.SchemaVersion = CurrentSchemaVersion
	return &st
}

func encodeState(st *State) (string, error) {
	b, err := json.Marshal(st)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
