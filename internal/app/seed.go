// ABOUTME: Sample data seeding for first runs and demos.
// ABOUTME: Fills the last seven days so the trend chart has something to show.
package app

import (
	"errors"

	"github.com/2389-research/haven/internal/models"
	"github.com/2389-research/haven/internal/store"
)

// ErrAlreadySeeded is returned when either store already holds data.
var ErrAlreadySeeded = errors.New("stores already contain data")

var sampleMoods = []struct {
	daysAgo int
	mood    string
	note    string
}{
	{6, "happy", "Had a great day at work!"},
	{5, "neutral", "Regular day, nothing special."},
	{4, "sad", "Feeling a bit down today."},
	{3, "happy", "Went for a walk, feeling better!"},
	{2, "very-happy", "Amazing day with friends!"},
	{1, "neutral", "Quiet day at home."},
	{0, "happy", "Good progress on my goals."},
}

var sampleJournal = []struct {
	daysAgo int
	content string
}{
	{6, "Today was productive. I finished my project and felt really accomplished."},
	{5, "Feeling a bit stressed about the upcoming presentation. Need to practice more."},
	{4, "Had a difficult conversation with a friend today. Still processing my feelings about it."},
}

// Seed populates both stores with sample entries covering the trend window.
// It refuses to touch stores that already hold data.
func (a *App) Seed() error {
	if a.moods.Len() > 0 || a.journal.Len() > 0 {
		return ErrAlreadySeeded
	}

	now := a.now()
	for _, s := range sampleMoods {
		a.moods.Append(models.NewMoodRecord(s.mood, s.note, now.AddDate(0, 0, -s.daysAgo)))
	}
	for _, s := range sampleJournal {
		a.journal.Append(models.NewJournalRecord(s.content, now.AddDate(0, 0, -s.daysAgo)))
	}

	if err := store.Save(a.gateway, store.MoodKey, a.moods); err != nil {
		return err
	}
	return store.Save(a.gateway, store.JournalKey, a.journal)
}
