// ABOUTME: Interactive chat session with the support bot.
// ABOUTME: Bubbletea model with a transcript, a text input, and a delayed reply beat.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReplyFn produces the bot's reply for a user message. It is called
// synchronously at send time; only the display of the result is delayed.
type ReplyFn func(message string) (string, error)

// replyMsg delivers a computed reply after the presentation delay.
type replyMsg struct {
	text string
}

var (
	botStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	userStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	typingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// message is one transcript line.
type message struct {
	fromBot bool
	text    string
}

// ChatModel is the bubbletea model for the chat session.
type ChatModel struct {
	replyFn    ReplyFn
	replyDelay time.Duration
	input      textinput.Model
	transcript []message
	waiting    bool
	quitting   bool
}

// NewChatModel creates a chat session model. replyDelay is how long the bot
// "thinks" before its reply appears.
func NewChatModel(replyFn ReplyFn, replyDelay time.Duration) ChatModel {
	input := textinput.New()
	input.Placeholder = "How are you feeling?"
	input.Focus()
	input.Width = 60

	return ChatModel{
		replyFn:    replyFn,
		replyDelay: replyDelay,
		input:      input,
		transcript: []message{
			{fromBot: true, text: "Hello! I'm here to listen. Type a message, or press Esc to leave."},
		},
	}
}

// Init implements tea.Model.
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.send()
		}

	case replyMsg:
		m.waiting = false
		m.transcript = append(m.transcript, message{fromBot: true, text: msg.text})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ChatModel) send() (tea.Model, tea.Cmd) {
	if m.waiting {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.transcript = append(m.transcript, message{text: text})

	reply, err := m.replyFn(text)
	if err != nil {
		return m, nil
	}

	m.waiting = true
	delay := m.replyDelay
	return m, tea.Tick(delay, func(time.Time) tea.Msg {
		return replyMsg{text: reply}
	})
}

// View implements tea.Model.
func (m ChatModel) View() string {
	if m.quitting {
		return "Take care of yourself.\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, msg := range m.transcript {
		if msg.fromBot {
			b.WriteString(botStyle.Render("haven"))
		} else {
			b.WriteString(userStyle.Render("you"))
		}
		b.WriteString(": ")
		b.WriteString(msg.text)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(typingStyle.Render("haven is typing..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter to send · esc to quit"))
	b.WriteString("\n")
	return b.String()
}
