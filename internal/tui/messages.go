package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MessageType selects how a status message is styled.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// messageTimeout is how long a status message stays visible.
const messageTimeout = 3 * time.Second

// locationMsg reports that the device location changed.
type locationMsg struct{}

// clearMessageMsg clears the status message it was scheduled for.
type clearMessageMsg struct {
	seq int
}

// waitForLocation blocks until the location source signals a change.
func waitForLocation(updates <-chan struct{}) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return locationMsg{}
	}
}

func clearMessageAfter(seq int) tea.Cmd {
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return clearMessageMsg{seq: seq}
	})
}
