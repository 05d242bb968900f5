package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler is implemented by screens that want Esc delivered to them
// instead of the app popping the screen.
type BackHandler interface {
	HandlesBack() bool
}

// ScoreProvider is implemented by screens that have a running tally to
// show in the header.
type ScoreProvider interface {
	Score() (correct, answered int)
}

// Env is the state shared by every screen of one program run.
type Env struct {
	// Pool holds the selected problem type IDs. Empty means all.
	Pool   []string
	Rand   problem.Rand
	Logger *logging.Logger
}

// NewEnv returns an Env with the given pool and defaults for the rest.
func NewEnv(pool []string, r problem.Rand, l *logging.Logger) *Env {
	if r == nil {
		r = problem.DefaultRand()
	}
	if l == nil {
		l = logging.Discard()
	}
	return &Env{Pool: pool, Rand: r, Logger: l}
}
