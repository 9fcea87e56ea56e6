package config

import (
	"github.com/alexisbeaulieu97/designtokens/internal/logger"
)

// Field names a single base parameter. Values double as preset keys.
type Field string

const (
	FieldBrandHue        Field = "brand_hue"
	FieldBrandSaturation Field = "brand_saturation"
	FieldRadiusScale     Field = "radius_scale"
	FieldSpacingScale    Field = "spacing_scale"
	FieldFontScale       Field = "font_scale"
	FieldDarkMode        Field = "dark_mode"
	FieldContrast        Field = "contrast"
	FieldLetterSpacing   Field = "letter_spacing"
	FieldLineHeight      Field = "line_height"
	FieldFontSize        Field = "font_size"
)

// Change is delivered to listeners after a single field write.
type Change struct {
	Field  Field
	Config Config
}

// Listener receives change signals. It must re-derive whatever it renders;
// the store never pushes computed tokens.
type Listener func(Change)

// Subscription represents a registered listener.
type Subscription interface {
	Unsubscribe()
}

// StoreOption customises a Store at construction.
type StoreOption func(*Store)

// WithLogger attaches a logger that records every mutation at debug level.
func WithLogger(log *logger.Logger) StoreOption {
	return func(s *Store) {
		s.log = log.With("source", "config_store")
	}
}

// Store is the single mutable source of truth for the base parameters.
//
// Every setter notifies all listeners synchronously before it returns, one
// notification per write, including writes of an unchanged value. The store
// performs no validation. It is not safe for concurrent use and is meant to
// be owned by the UI thread.
type Store struct {
	cfg    Config
	subs   []subscriptionEntry
	nextID int
	log    *logger.Logger
}

// NewStore allocates a Store holding initial.
func NewStore(initial Config, opts ...StoreOption) *Store {
	s := &Store{cfg: initial}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current configuration by value.
func (s *Store) Snapshot() Config {
	return s.cfg
}

// Subscribe registers listener. Listeners are called in subscription order.
func (s *Store) Subscribe(listener Listener) Subscription {
	if listener == nil {
		return noopSubscription{}
	}
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriptionEntry{id: id, listener: listener})

	return &subscription{cancel: func() { s.unsubscribe(id) }}
}

// Listeners reports how many listeners are currently registered.
func (s *Store) Listeners() int {
	return len(s.subs)
}

func (s *Store) unsubscribe(id int) {
	for i, entry := range s.subs {
		if entry.id == id {
			next := make([]subscriptionEntry, 0, len(s.subs)-1)
			next = append(next, s.subs[:i]...)
			s.subs = append(next, s.subs[i+1:]...)
			return
		}
	}
}

func (s *Store) notify(field Field, value any) {
	s.log.Debug("configuration changed", "field", string(field), "value", value)

	// Listeners may unsubscribe during delivery; s.subs is replaced, never
	// mutated in place, so ranging over the current slice is stable.
	change := Change{Field: field, Config: s.cfg}
	for _, entry := range s.subs {
		entry.listener(change)
	}
}

func (s *Store) BrandHue() float64 { return s.cfg.BrandHue }

func (s *Store) SetBrandHue(v float64) {
	s.cfg.BrandHue = v
	s.notify(FieldBrandHue, v)
}

func (s *Store) BrandSaturation() float64 { return s.cfg.BrandSaturation }

func (s *Store) SetBrandSaturation(v float64) {
	s.cfg.BrandSaturation = v
	s.notify(FieldBrandSaturation, v)
}

func (s *Store) RadiusScale() float64 { return s.cfg.RadiusScale }

func (s *Store) SetRadiusScale(v float64) {
	s.cfg.RadiusScale = v
	s.notify(FieldRadiusScale, v)
}

func (s *Store) SpacingScale() float64 { return s.cfg.SpacingScale }

func (s *Store) SetSpacingScale(v float64) {
	s.cfg.SpacingScale = v
	s.notify(FieldSpacingScale, v)
}

func (s *Store) FontScale() float64 { return s.cfg.FontScale }

func (s *Store) SetFontScale(v float64) {
	s.cfg.FontScale = v
	s.notify(FieldFontScale, v)
}

func (s *Store) DarkMode() bool { return s.cfg.DarkMode }

func (s *Store) SetDarkMode(v bool) {
	s.cfg.DarkMode = v
	s.notify(FieldDarkMode, v)
}

func (s *Store) Contrast() ContrastMode { return s.cfg.Contrast }

func (s *Store) SetContrast(v ContrastMode) {
	s.cfg.Contrast = v
	s.notify(FieldContrast, v.String())
}

func (s *Store) LetterSpacing() LetterSpacingMode { return s.cfg.LetterSpacing }

func (s *Store) SetLetterSpacing(v LetterSpacingMode) {
	s.cfg.LetterSpacing = v
	s.notify(FieldLetterSpacing, v.String())
}

func (s *Store) LineHeight() LineHeightMode { return s.cfg.LineHeight }

func (s *Store) SetLineHeight(v LineHeightMode) {
	s.cfg.LineHeight = v
	s.notify(FieldLineHeight, v.String())
}

func (s *Store) FontSize() FontSizePreset { return s.cfg.FontSize }

func (s *Store) SetFontSize(v FontSizePreset) {
	s.cfg.FontSize = v
	s.notify(FieldFontSize, v.String())
}

// Reset restores the default tuple. Each field is written through its setter,
// so listeners observe one notification per field.
func (s *Store) Reset() {
	s.Replace(Default())
}

// Replace writes every field of cfg through its setter.
func (s *Store) Replace(cfg Config) {
	s.SetBrandHue(cfg.BrandHue)
	s.SetBrandSaturation(cfg.BrandSaturation)
	s.SetRadiusScale(cfg.RadiusScale)
	s.SetSpacingScale(cfg.SpacingScale)
	s.SetFontScale(cfg.FontScale)
	s.SetDarkMode(cfg.DarkMode)
	s.SetContrast(cfg.Contrast)
	s.SetLetterSpacing(cfg.LetterSpacing)
	s.SetLineHeight(cfg.LineHeight)
	s.SetFontSize(cfg.FontSize)
}

type subscriptionEntry struct {
	id       int
	listener Listener
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s *subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
