// Package tokens bundles the color, typography and spacing engines over one
// configuration source and flattens them into an exportable snapshot.
package tokens

import (
	"github.com/alexisbeaulieu97/designtokens/internal/config"
	"github.com/alexisbeaulieu97/designtokens/internal/palette"
	"github.com/alexisbeaulieu97/designtokens/internal/spacing"
	"github.com/alexisbeaulieu97/designtokens/internal/typography"
)

// Tokens is the read side of the design system. Every accessor re-derives
// from the source on each call.
type Tokens struct {
	Colors *palette.Engine
	Type   typography.Engine
	Space  spacing.Engine

	src config.Source
}

// New wires all engines to src. src is usually a *config.Store, or a fixed
// config.Config for one-off derivations.
func New(src config.Source) *Tokens {
	return &Tokens{
		Colors: palette.New(src),
		Type:   typography.New(src),
		Space:  spacing.New(src),
		src:    src,
	}
}

// Config returns the configuration the tokens currently derive from.
func (t *Tokens) Config() config.Config {
	return t.src.Snapshot()
}
