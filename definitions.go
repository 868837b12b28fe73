// Package argbind binds raw command-line tokens to a typed argument map,
// driven entirely by a declarative per-argument specification.
//
// A SpecSet describes every accepted argument (type, required-ness,
// positional index, aliases); a Binder translates the set into an
// option-matching grammar, runs the matcher over an argument vector, absorbs
// leftover tokens into positional slots and enforces required arguments.
// The outcome is a BindingResult carrying the populated ArgumentMap or a
// typed error.
package argbind

import (
	"errors"
)

// Status classifies a binding outcome.
type Status int

const (
	// Success - the argument map was populated (possibly partially, in
	// lenient mode).
	Success Status = iota
	// ClientError - the input argv or the caller-supplied configuration was
	// at fault.
	ClientError
	// ServerError - the specification itself or a handler was broken.
	ServerError
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case ClientError:
		return "client error"
	default:
		return "server error"
	}
}

// AssignHookFunc is invoked after a value has been stored in the argument
// map. source is the option token which triggered the match, or one of the
// Source* sentinels when the value did not come from an option.
type AssignHookFunc func(name string, value any, args *ArgumentMap, source string)

// MissingArgumentFunc may resolve a required argument that is absent after
// binding. Returning true marks the argument as resolved.
type MissingArgumentFunc func(name string, args *ArgumentMap, spec *ArgumentSpec) bool

// AliasHandlerFunc replaces the default decoding of an alias option. The
// handler receives the raw value and writes whatever it wants into the map.
type AliasHandlerFunc func(value string, args *ArgumentMap) error

// ConfigureBinderFunc is used when configuring a Binder.
type ConfigureBinderFunc func(b *Binder, err *error)

// ConfigureSpecFunc is used when configuring an ArgumentSpec.
type ConfigureSpecFunc func(spec *ArgumentSpec, err *error)

// Source sentinels passed to AssignHookFunc for values that were not matched
// by an option token.
const (
	SourcePositional = "<positional>"
	SourceSecure     = "<secure>"
)

var (
	ErrNoSpecs                  = errors.New("no argument specification provided")
	ErrUnsupportedSpecVersion   = errors.New("unsupported specification version")
	ErrDuplicateSpec            = errors.New("argument already declared")
	ErrOptionParsingFailed      = errors.New("option parsing failed")
	ErrOptionPositionalConflict = errors.New("specified as option and positionally")
	ErrInvalidStructuredValue   = errors.New("invalid structured value")
	ErrMissingRequiredArgument  = errors.New("missing required argument")
	ErrAliasHandlerLost         = errors.New("alias handler lost in transport")
	ErrExtraPositional          = errors.New("extra positional tokens")
	ErrArgumentNotSet           = errors.New("argument not set")
)

const FmtErrorWithString = "%w: %s"
