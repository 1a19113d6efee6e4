package namedlist

import (
	"log/slog"

	"golang.org/x/text/cases"
)

// Options configures a [List].
//
// The zero value is valid: every unset field falls back to the value from
// [DefaultOptions].
type Options struct {
	// Logger receives debug records about realization. Defaults to a logger
	// that discards everything.
	Logger *slog.Logger

	// Fold maps a name to the key used for case-insensitive comparison.
	// Two names are considered equal when their folded forms are equal.
	// Defaults to full Unicode case folding.
	Fold func(string) string
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
		Fold:   UnicodeFold(),
	}
}

// UnicodeFold returns a fold function performing Unicode case folding, so
// that "ÄRGER", "Ärger" and "ärger" compare equal.
func UnicodeFold() func(string) string {
	return cases.Fold().String
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	if o.Fold == nil {
		o.Fold = def.Fold
	}
	return o
}
