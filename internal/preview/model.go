// Package preview is an interactive terminal view over a configuration
// store. Key presses write to the store the way sliders and toggles would;
// every render re-derives the tokens from the store's current value.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
	"github.com/alexisbeaulieu97/designtokens/internal/tokens"
)

// Control steps and slider ranges.
const (
	HueStep        = 5.0
	SaturationStep = 5.0
	ScaleStep      = 0.1
	MinScale       = 0.5
	MaxScale       = 3.0
)

// activity is shared by every copy of the model, so the store listener can
// record notifications without holding a model value.
type activity struct {
	notifications int
	last          config.Field
}

// Model is the Bubbletea state of the preview.
type Model struct {
	store    *config.Store
	tokens   *tokens.Tokens
	keys     keyMap
	help     help.Model
	activity *activity
	sub      config.Subscription
	width    int
	quitting bool
}

// NewModel subscribes a preview to store. Call Close once the program exits.
func NewModel(store *config.Store) Model {
	act := &activity{}
	sub := store.Subscribe(func(c config.Change) {
		act.notifications++
		act.last = c.Field
	})

	return Model{
		store:    store,
		tokens:   tokens.New(store),
		keys:     defaultKeyMap(),
		help:     help.New(),
		activity: act,
		sub:      sub,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close detaches the preview from its store.
func (m Model) Close() {
	if m.sub != nil {
		m.sub.Unsubscribe()
	}
}

// Notifications returns how many change notifications the preview has seen.
func (m Model) Notifications() int {
	return m.activity.notifications
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
