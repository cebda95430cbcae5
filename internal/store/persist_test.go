// ABOUTME: Tests for store serialization through the persistence gateway.
// ABOUTME: Covers round-trips, missing keys, and malformed stored data.
package store

import (
	"testing"
	"time"

	"github.com/2389-research/haven/internal/models"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	g := NewMemoryGateway()

	s := NewEntryStore[models.MoodRecord]()
	s.Append(models.NewMoodRecord("happy", "good day", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)))
	s.Append(models.NewMoodRecord("sad", "", time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)))
	s.Append(models.NewMoodRecord("happy", "again", time.Date(2024, 1, 16, 20, 0, 0, 0, time.UTC)))

	if err := Save(g, MoodKey, s); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	fresh := NewEntryStore[models.MoodRecord]()
	if err := Load(g, MoodKey, fresh); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	original := s.All()
	loaded := fresh.All()
	if len(loaded) != len(original) {
		t.Fatalf("expected %d records, got %d", len(original), len(loaded))
	}
	for i := range original {
		if loaded[i].ID != original[i].ID {
			t.Errorf("record %d: ID mismatch", i)
		}
		if loaded[i].Date != original[i].Date {
			t.Errorf("record %d: got date %s, want %s", i, loaded[i].Date, original[i].Date)
		}
		if loaded[i].Mood != original[i].Mood {
			t.Errorf("record %d: got mood %s, want %s", i, loaded[i].Mood, original[i].Mood)
		}
		if loaded[i].Note != original[i].Note {
			t.Errorf("record %d: note mismatch", i)
		}
		if !loaded[i].Timestamp.Equal(original[i].Timestamp) {
			t.Errorf("record %d: timestamp mismatch", i)
		}
	}
}

func TestLoadMissingKeyMeansEmpty(t *testing.T) {
	g := NewMemoryGateway()
	s := NewEntryStore[models.JournalRecord]()

	if err := Load(g, JournalKey, s); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store for missing key, got %d records", s.Len())
	}
}

func TestLoadMalformedDataDegradesToEmpty(t *testing.T) {
	g := NewMemoryGateway()
	if err := g.Set(MoodKey, "{this is not json"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	s := NewEntryStore[models.MoodRecord]()
	s.Append(models.NewMoodRecord("happy", "", time.Now()))

	if err := Load(g, MoodKey, s); err != nil {
		t.Fatalf("expected malformed data to degrade, got error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store after malformed load, got %d records", s.Len())
	}
}

func TestLoadUnknownMoodTagSurvives(t *testing.T) {
	g := NewMemoryGateway()
	stored := `[{"date":"2024-01-15","mood":"ecstatic","note":"","timestamp":"2024-01-15T10:00:00Z"}]`
	if err := g.Set(MoodKey, stored); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	s := NewEntryStore[models.MoodRecord]()
	if err := Load(g, MoodKey, s); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Len())
	}
	if s.All()[0].Mood != "ecstatic" {
		t.Errorf("unknown tag should round-trip verbatim, got %q", s.All()[0].Mood)
	}
}

func TestLoadLocalStoragePayload(t *testing.T) {
	// Payload shape the original browser app wrote: no IDs.
	g := NewMemoryGateway()
	stored := `[{"date":"2024-01-15","mood":"happy","note":"Had a great day at work!","timestamp":"2024-01-15T10:00:00.000Z"}]`
	if err := g.Set(MoodKey, stored); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	s := NewEntryStore[models.MoodRecord]()
	if err := Load(g, MoodKey, s); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Len())
	}
	if s.All()[0].Note != "Had a great day at work!" {
		t.Errorf("note mismatch: %q", s.All()[0].Note)
	}
}
