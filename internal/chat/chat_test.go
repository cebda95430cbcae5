// ABOUTME: Tests for chat classification and canned reply selection.
// ABOUTME: Covers priority ordering, case-insensitivity, and template reachability.
package chat

import (
	"testing"
)

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Category
	}{
		{"greeting hello", "hello there", CategoryGreeting},
		{"greeting hi", "oh hi", CategoryGreeting},
		{"greeting hey", "hey", CategoryGreeting},
		{"low mood sad", "I feel so sad", CategoryLowMood},
		{"low mood depressed", "been depressed lately", CategoryLowMood},
		{"low mood down", "feeling down", CategoryLowMood},
		{"stress", "so much stress at work", CategoryStress},
		{"stress overwhelmed", "I'm overwhelmed", CategoryStress},
		{"anxiety", "my anxiety is acting up", CategoryAnxiety},
		{"anxiety worried", "worried about tomorrow", CategoryAnxiety},
		{"help", "I need help", CategoryHelp},
		{"help support", "looking for some support", CategoryHelp},
		{"fallback", "the weather was nice today", CategoryFallback},
		{"fallback empty", "", CategoryFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.utterance); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Greeting is checked before stress keywords
	if got := Classify("hey, I'm really stressed"); got != CategoryGreeting {
		t.Errorf("Classify(%q) = %v, want greeting", "hey, I'm really stressed", got)
	}

	// Anxiety is checked before help
	if got := Classify("I feel anxious and need help"); got != CategoryAnxiety {
		t.Errorf("Classify(%q) = %v, want anxiety", "I feel anxious and need help", got)
	}

	// Low mood is checked before stress
	if got := Classify("sad and stressed"); got != CategoryLowMood {
		t.Errorf("Classify(%q) = %v, want low-mood", "sad and stressed", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("HELLO FRIEND"); got != CategoryGreeting {
		t.Errorf("Classify uppercase greeting = %v, want greeting", got)
	}
	if got := Classify("Feeling Anxious"); got != CategoryAnxiety {
		t.Errorf("Classify mixed-case anxiety = %v, want anxiety", got)
	}
}

func TestReplyComesFromCategoryTemplates(t *testing.T) {
	for _, c := range []Category{
		CategoryGreeting, CategoryLowMood, CategoryStress,
		CategoryAnxiety, CategoryHelp, CategoryFallback,
	} {
		reply := Reply(c)
		found := false
		for _, tmpl := range Templates(c) {
			if reply == tmpl {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Reply(%v) returned a string outside its template set: %q", c, reply)
		}
	}
}

func TestReplyEveryTemplateReachable(t *testing.T) {
	seen := make(map[string]bool)
	// Greeting has 3 templates; 200 uniform draws miss one with negligible odds.
	for i := 0; i < 200; i++ {
		seen[Reply(CategoryGreeting)] = true
	}
	if len(seen) != len(Templates(CategoryGreeting)) {
		t.Errorf("expected all %d greeting templates to appear, saw %d",
			len(Templates(CategoryGreeting)), len(seen))
	}
}

func TestFallbackHasSingleTemplate(t *testing.T) {
	templates := Templates(CategoryFallback)
	if len(templates) != 1 {
		t.Fatalf("fallback must have exactly one template, got %d", len(templates))
	}
	if Reply(CategoryFallback) != templates[0] {
		t.Error("fallback reply should always be its single template")
	}
}

func TestRespond(t *testing.T) {
	reply := Respond("hello")
	found := false
	for _, tmpl := range Templates(CategoryGreeting) {
		if reply == tmpl {
			found = true
		}
	}
	if !found {
		t.Errorf("Respond(%q) should draw from greeting templates, got %q", "hello", reply)
	}
}
