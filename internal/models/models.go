// ABOUTME: Core data models for mood records and journal entries.
// ABOUTME: Provides the mood tag enum, ordinal mapping, and record constructors.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the day-granularity date layout used on every record.
const DateFormat = "2006-01-02"

// Mood level ordinals. Zero is reserved: it is never a valid level.
const (
	LevelVerySad   = 1
	LevelSad       = 2
	LevelNeutral   = 3
	LevelHappy     = 4
	LevelVeryHappy = 5
)

// ValidMoods lists the allowed mood tags, lowest level first.
var ValidMoods = []string{
	"very-sad",
	"sad",
	"neutral",
	"happy",
	"very-happy",
}

var moodLevels = map[string]int{
	"very-sad":   LevelVerySad,
	"sad":        LevelSad,
	"neutral":    LevelNeutral,
	"happy":      LevelHappy,
	"very-happy": LevelVeryHappy,
}

var moodLabels = map[string]string{
	"very-sad":   "Very Sad",
	"sad":        "Sad",
	"neutral":    "Neutral",
	"happy":      "Happy",
	"very-happy": "Very Happy",
}

// IsValidMood returns true if the given mood tag is one of the five levels.
func IsValidMood(tag string) bool {
	_, ok := moodLevels[tag]
	return ok
}

// MoodLevel maps a mood tag to its 1-5 ordinal. Unknown tags map to Neutral
// with ok=false so data written by older or foreign writers degrades instead
// of failing.
func MoodLevel(tag string) (level int, ok bool) {
	if l, found := moodLevels[tag]; found {
		return l, true
	}
	return LevelNeutral, false
}

// MoodLabel returns a display name for a mood tag, or the raw tag when unknown.
func MoodLabel(tag string) string {
	if label, ok := moodLabels[tag]; ok {
		return label
	}
	return tag
}

// MoodRecord is a single mood check-in. Date is derived from Timestamp at
// construction time and never re-derived afterward.
type MoodRecord struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Day returns the record's calendar date.
func (r MoodRecord) Day() string { return r.Date }

// NewMoodRecord creates a mood record stamped at the given moment.
func NewMoodRecord(mood, note string, at time.Time) MoodRecord {
	return MoodRecord{
		ID:        uuid.New(),
		Date:      at.Format(DateFormat),
		Mood:      mood,
		Note:      note,
		Timestamp: at,
	}
}

// JournalRecord is a single free-text journal entry. Content is never empty:
// validation happens before construction.
type JournalRecord struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Day returns the record's calendar date.
func (r JournalRecord) Day() string { return r.Date }

// NewJournalRecord creates a journal record stamped at the given moment.
func NewJournalRecord(content string, at time.Time) JournalRecord {
	return JournalRecord{
		ID:        uuid.New(),
		Date:      at.Format(DateFormat),
		Content:   content,
		Timestamp: at,
	}
}
