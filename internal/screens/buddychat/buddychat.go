// Package buddychat implements the learning buddy chat screen.
package buddychat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ritika/funlearn/internal/buddy"
	"github.com/ritika/funlearn/internal/screen"
	"github.com/ritika/funlearn/internal/screens/nav"
	"github.com/ritika/funlearn/internal/ui/components"
	"github.com/ritika/funlearn/internal/ui/layout"
	"github.com/ritika/funlearn/internal/ui/theme"
)

// replyMsg carries the buddy's reply to the latest input.
type replyMsg struct {
	Text string
	Err  error
}

// visibleMessages bounds the rendered transcript tail.
const visibleMessages = 12

// ChatScreen is a simple transcript-plus-input chat.
type ChatScreen struct {
	deps *nav.Deps

	transcript []buddy.Message
	input      components.TextInput
	waiting    bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen with the buddy's greeting.
func New(deps *nav.Deps) *ChatScreen {
	return &ChatScreen{
		deps: deps,
		transcript: []buddy.Message{
			{From: buddy.SenderBuddy, Text: buddy.Greeting},
		},
		input: components.NewTextInput("Type your message...", 60),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string { return "Buddy Chat" }

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		text := msg.Text
		if msg.Err != nil {
			text = "Oops, I got distracted. Can you say that again?"
		}
		c.transcript = append(c.transcript, buddy.Message{From: buddy.SenderBuddy, Text: text})
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !c.waiting {
			return c, c.send()
		}
	}

	if !c.waiting {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}
	c.input.Model.SetValue("")

	history := make([]buddy.Message, len(c.transcript))
	copy(history, c.transcript)
	c.transcript = append(c.transcript, buddy.Message{From: buddy.SenderLearner, Text: text})
	c.waiting = true

	responder := c.deps.Buddy
	return func() tea.Msg {
		reply, err := responder.Respond(context.Background(), history, text)
		return replyMsg{Text: reply, Err: err}
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	learnerStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	buddyStyle := lipgloss.NewStyle().Foreground(theme.Text)

	msgs := c.transcript
	if len(msgs) > visibleMessages {
		msgs = msgs[len(msgs)-visibleMessages:]
	}

	var rows []string
	for _, m := range msgs {
		if m.From == buddy.SenderLearner {
			rows = append(rows, learnerStyle.Render("You: "+m.Text))
		} else {
			rows = append(rows, buddyStyle.Render("🤖 Buddy: "+m.Text))
		}
	}
	if c.waiting {
		rows = append(rows, theme.Hint.Render("Buddy is thinking..."))
	}
	rows = append(rows, "", c.input.View())

	content := components.Card(strings.Join(rows, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
