// ABOUTME: Rolling 7-day mood trend derivation from the mood entry store.
// ABOUTME: One slot per day, oldest first, with an explicit no-data sentinel.
package trend

import (
	"time"

	"github.com/2389-research/haven/internal/models"
	"github.com/2389-research/haven/internal/store"
)

// WindowDays is the fixed length of the rolling trend window.
const WindowDays = 7

// Slot is one day of the trend window. HasData distinguishes a real level
// from a gap; Level is only meaningful when HasData is true, so rendering
// can show a gap instead of a false midpoint.
type Slot struct {
	Date    string
	Mood    string
	Level   int
	HasData bool
}

// Window is an ordered sequence of exactly WindowDays slots, most recent
// day last. It is derived on demand and never persisted.
type Window [WindowDays]Slot

// Derive builds the trend window for the seven days ending at today. Each
// day resolves through FindByDate, so when a day has multiple check-ins the
// last-appended one wins. Unrecognized mood tags degrade to Neutral rather
// than failing the derivation. No caching: every call recomputes from the
// current store state.
func Derive(moods *store.EntryStore[models.MoodRecord], today time.Time) Window {
	var w Window
	for i := 0; i < WindowDays; i++ {
		day := today.AddDate(0, 0, i-(WindowDays-1))
		date := day.Format(models.DateFormat)

		slot := Slot{Date: date}
		if record, ok := moods.FindByDate(date); ok {
			level, _ := models.MoodLevel(record.Mood)
			slot.Mood = record.Mood
			slot.Level = level
			slot.HasData = true
		}
		w[i] = slot
	}
	return w
}
