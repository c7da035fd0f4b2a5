// Package nav carries the messages and shared dependencies that screens
// use to navigate. Screens emit directives; the app root maps them to
// concrete screens so screen packages never import each other in cycles.
package nav

import (
	"github.com/ritika/funlearn/internal/buddy"
	"github.com/ritika/funlearn/internal/practice"
	"github.com/ritika/funlearn/internal/profile"
	"github.com/ritika/funlearn/internal/progression"
	"github.com/ritika/funlearn/internal/store"
)

// Deps bundles the services screens need. Profile is nil until login.
type Deps struct {
	Engine   *progression.Engine
	Profiles store.ProfileRepo
	Attempts store.AttemptRepo
	Gen      *practice.Generator
	Buddy    buddy.Responder

	Profile *profile.Profile
}

// LoggedInMsg is emitted by the welcome screen after a successful login
// or registration.
type LoggedInMsg struct {
	Profile *profile.Profile
}

// DiagnosticCompleteMsg is emitted by the diagnostic screen once every
// subject has been placed.
type DiagnosticCompleteMsg struct{}

// DirectiveMsg asks the app root to navigate per a progression directive.
type DirectiveMsg struct {
	Directive progression.Directive
}

// GoDashboardMsg returns to the dashboard, popping everything above it.
type GoDashboardMsg struct{}

// ErrorMsg surfaces a fatal screen error to the app root.
type ErrorMsg struct {
	Err error
}
