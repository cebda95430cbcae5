// ABOUTME: Application context owning the mood and journal stores.
// ABOUTME: Validates input at the boundary, appends, and flushes after every append.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2389-research/haven/internal/chat"
	"github.com/2389-research/haven/internal/models"
	"github.com/2389-research/haven/internal/store"
	"github.com/2389-research/haven/internal/trend"
)

// Validation errors surfaced to the caller as user-facing notices. The
// operation that returns one is a no-op: no record is produced.
var (
	ErrNoMood       = errors.New("no mood selected")
	ErrUnknownMood  = errors.New("unknown mood")
	ErrEmptyJournal = errors.New("journal entry is empty")
	ErrEmptyMessage = errors.New("message is empty")
)

// App owns the in-memory stores and their persistence gateway. There is one
// App per process; the stores are hydrated once at Open and grown only by
// append.
type App struct {
	gateway store.Gateway
	moods   *store.EntryStore[models.MoodRecord]
	journal *store.EntryStore[models.JournalRecord]
	now     func() time.Time
}

// Open hydrates both stores from the gateway. The gateway stays owned by the
// caller; Close it after the App is done.
func Open(gateway store.Gateway) (*App, error) {
	a := &App{
		gateway: gateway,
		moods:   store.NewEntryStore[models.MoodRecord](),
		journal: store.NewEntryStore[models.JournalRecord](),
		now:     time.Now,
	}
	if err := store.Load(gateway, store.MoodKey, a.moods); err != nil {
		return nil, fmt.Errorf("failed to hydrate mood store: %w", err)
	}
	if err := store.Load(gateway, store.JournalKey, a.journal); err != nil {
		return nil, fmt.Errorf("failed to hydrate journal store: %w", err)
	}
	return a, nil
}

// Moods returns the mood store.
func (a *App) Moods() *store.EntryStore[models.MoodRecord] { return a.moods }

// Journal returns the journal store.
func (a *App) Journal() *store.EntryStore[models.JournalRecord] { return a.journal }

// SaveMood records a mood check-in stamped now. The tag must be one of the
// five valid mood tags; the note is optional.
func (a *App) SaveMood(mood, note string) (models.MoodRecord, error) {
	if mood == "" {
		return models.MoodRecord{}, ErrNoMood
	}
	if !models.IsValidMood(mood) {
		return models.MoodRecord{}, fmt.Errorf("%w: %q (valid: %s)",
			ErrUnknownMood, mood, strings.Join(models.ValidMoods, ", "))
	}

	record := models.NewMoodRecord(mood, note, a.now())
	a.moods.Append(record)
	if err := store.Save(a.gateway, store.MoodKey, a.moods); err != nil {
		return models.MoodRecord{}, err
	}
	return record, nil
}

// SaveJournal records a journal entry stamped now. Whitespace-only content
// is rejected and leaves the store unchanged.
func (a *App) SaveJournal(content string) (models.JournalRecord, error) {
	if strings.TrimSpace(content) == "" {
		return models.JournalRecord{}, ErrEmptyJournal
	}

	record := models.NewJournalRecord(content, a.now())
	a.journal.Append(record)
	if err := store.Save(a.gateway, store.JournalKey, a.journal); err != nil {
		return models.JournalRecord{}, err
	}
	return record, nil
}

// MoodTrend derives the 7-day trend window anchored to today.
func (a *App) MoodTrend() trend.Window {
	return trend.Derive(a.moods, a.now())
}

// ChatReply classifies a chat message and returns a canned reply. Messages
// that are empty after trimming are rejected.
func (a *App) ChatReply(message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	return chat.Respond(message), nil
}
