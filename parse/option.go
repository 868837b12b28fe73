// Package parse implements the option-matching layer of the binding engine:
// a shell-style lexer and a getopt-like matcher which consumes an argument
// vector against a handler-table grammar. The matcher knows nothing about
// argument specifications - it only sees option names, value arity and
// handler closures.
package parse

import "errors"

// HandlerFunc is invoked for every matched occurrence of an option. source
// is the option token as written on the command line (e.g. "--tag" or "-t"),
// value is the raw string value ("true"/"false" for valueless boolean
// options). Returning an error aborts matching.
type HandlerFunc func(source, value string) error

// Option is one entry of an option-matching grammar.
type Option struct {
	// Name is the option token without dashes: a long kebab-case name or a
	// single letter.
	Name string
	// TakesValue options consume exactly one string value per occurrence.
	TakesValue bool
	// Negatable long boolean options implicitly accept a "no-" prefixed
	// form which yields the value "false".
	Negatable bool
	Handler   HandlerFunc
}

// MatchMode controls matcher behavior. Matching is always case-sensitive.
type MatchMode struct {
	// Strict fails on unknown options; otherwise unknown option tokens are
	// passed through as leftovers.
	Strict bool
	// Permute keeps scanning for options after the first non-option token;
	// when false matching stops there and the rest is leftover.
	Permute bool
	// Bundling allows single-dash tokens to bundle several single-letter
	// options ("-ab" for "-a -b", "-ovalue" for "-o value").
	Bundling bool
}

// Matcher consumes an argument vector against a grammar, invoking handlers
// in token-encounter order, and returns the unconsumed tokens. The input
// slice is never modified.
type Matcher interface {
	Match(args []string, grammar []Option, mode MatchMode) ([]string, error)
}

var (
	ErrUnknownOption   = errors.New("unknown option")
	ErrMissingValue    = errors.New("option requires a value")
	ErrInvalidBundling = errors.New("cannot bundle option")
)
