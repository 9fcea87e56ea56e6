package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtokens/internal/config"
	"github.com/alexisbeaulieu97/designtokens/internal/logger"
	"github.com/alexisbeaulieu97/designtokens/internal/tokens"
)

// AppContext bundles the store and the services a command works with.
type AppContext struct {
	Store  *config.Store
	Tokens *tokens.Tokens
	Log    *logger.Logger
}

// newAppContext builds the store from defaults, then the preset file, then
// any flag set explicitly on the command line.
func newAppContext(cmd *cobra.Command, flags *rootFlags, component string) (*AppContext, error) {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	store := config.NewStore(config.Default(), config.WithLogger(log))

	if flags.preset != "" {
		preset, err := config.ParsePreset(flags.preset)
		if err != nil {
			log.Error(err, "preset rejected", "path", flags.preset)
			return nil, fmt.Errorf("load preset: %w", err)
		}
		preset.Apply(store)
		log.Debug("preset applied", "path", flags.preset)
	}

	overrides, err := flagPreset(cmd, flags)
	if err != nil {
		log.Error(err, "invalid flags")
		return nil, err
	}
	overrides.Apply(store)

	return &AppContext{
		Store:  store,
		Tokens: tokens.New(store),
		Log:    log,
	}, nil
}
