// ABOUTME: Keyword classifier for support chat messages.
// ABOUTME: Case-insensitive containment matching in fixed priority order, first match wins.
package chat

import "strings"

// Category is a canned-response bucket for a chat message.
type Category int

const (
	CategoryGreeting Category = iota
	CategoryLowMood
	CategoryStress
	CategoryAnxiety
	CategoryHelp
	CategoryFallback
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryGreeting:
		return "greeting"
	case CategoryLowMood:
		return "low-mood"
	case CategoryStress:
		return "stress"
	case CategoryAnxiety:
		return "anxiety"
	case CategoryHelp:
		return "help"
	default:
		return "fallback"
	}
}

// rules are evaluated top to bottom; the first category with a keyword hit
// wins. Ordering is a contract: "hi, feeling sad" is a greeting, never
// low-mood, because greeting is checked first.
var rules = []struct {
	category Category
	keywords []string
}{
	{CategoryGreeting, []string{"hello", "hi", "hey"}},
	{CategoryLowMood, []string{"sad", "depressed", "down"}},
	{CategoryStress, []string{"stress", "stressed", "overwhelmed"}},
	{CategoryAnxiety, []string{"anxiety", "anxious", "worried"}},
	{CategoryHelp, []string{"help", "support"}},
}

// Classify maps an utterance to a response category by case-insensitive
// substring matching. Utterances matching no rule fall back to
// CategoryFallback.
func Classify(utterance string) Category {
	lowered := strings.ToLower(utterance)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.category
			}
		}
	}
	return CategoryFallback
}
