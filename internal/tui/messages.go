package tui

import "github.com/voxai-app/voxai/models"

// navigateMsg switches the active screen.
type navigateMsg struct {
	page string
}

// sessionEndedMsg is sent when the session manager transitions to
// Anonymous while the interface is running (logout or server rejection).
type sessionEndedMsg struct{}

// loginResultMsg carries the outcome of an async login command.
type loginResultMsg struct {
	err error
}

// registerResultMsg carries the outcome of an async registration command.
type registerResultMsg struct {
	err error
}

// chatReplyMsg carries the chatbot's answer to the last sent message.
type chatReplyMsg struct {
	reply string
	err   error
}

// schemesLoadedMsg carries the fetched scheme catalogue.
type schemesLoadedMsg struct {
	schemes []models.Scheme
	err     error
}
