// ABOUTME: Canned reply selection for classified chat messages.
// ABOUTME: Uniformly random draw from each category's template set.
package chat

import "math/rand/v2"

var templates = map[Category][]string{
	CategoryGreeting: {
		"Hello! I'm here to support you. How can I help you today?",
		"Hi there! I'm glad you're reaching out. What's on your mind?",
		"Welcome! I'm your mental health companion. How are you feeling?",
	},
	CategoryLowMood: {
		"It sounds like you're going through a tough time. Remember, it's okay to feel this way. Would you like to talk about what's causing these feelings?",
		"Your feelings are valid. Let's explore some coping strategies together.",
		"I understand you're struggling. Sometimes talking about our emotions can help. What's been weighing on your mind?",
	},
	CategoryStress: {
		"Stress is a natural response, but we can work together to manage it. Try taking some deep breaths.",
		"It sounds like you're feeling overwhelmed. Let's break this down into smaller, manageable steps.",
		"Remember to be kind to yourself. What are some things that usually help you relax?",
	},
	CategoryAnxiety: {
		"Anxiety can feel overwhelming, but you're not alone. Let's practice some grounding techniques.",
		"It's brave of you to share this. Anxiety is treatable, and there are many strategies we can explore.",
		"Your anxiety is valid. Let's work on some breathing exercises together.",
	},
	CategoryHelp: {
		"I'm here to listen and support you. What specific help are you looking for?",
		"I can help with mood tracking, coping strategies, or just be someone to talk to.",
		"Let me know what you need - I'm here to help with your mental wellness journey.",
	},
	CategoryFallback: {
		"Thank you for sharing that with me. I'm here to listen and support you. How else can I help you today?",
	},
}

// Templates returns the reply templates for a category. Every category has a
// non-empty set; fallback has exactly one.
func Templates(c Category) []string {
	return templates[c]
}

// Reply picks a reply for the category uniformly at random. The draw is not
// seeded or reproducible; it only has to be able to return every template.
func Reply(c Category) string {
	set := templates[c]
	return set[rand.IntN(len(set))]
}

// Respond classifies an utterance and returns a reply for it.
func Respond(utterance string) string {
	return Reply(Classify(utterance))
}
