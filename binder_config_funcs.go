package argbind

import (
	"fmt"

	"github.com/argbind/argbind/decode"
	"github.com/argbind/argbind/parse"
	"github.com/argbind/argbind/util"
)

// WithStrictMode controls the failure policy. Strict (the default) aborts
// the whole operation on any parsing or binding failure; lenient returns the
// best-effort partial map. An alias handler lost in transport fails hard in
// either mode.
func WithStrictMode(strict bool) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.strict = strict
	}
}

// WithRequiredCheck controls whether missing required arguments fail the
// binding (strict mode only). When disabled the first missing name is still
// reported through BindingResult.MissingArgument.
func WithRequiredCheck(check bool) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.checkRequired = check
	}
}

// WithJSONArgOptions registers an additional "<name>-json" option for every
// non-boolean argument, decoding with the JSON decoder only (no fallback).
func WithJSONArgOptions(enabled bool) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.jsonOptions = enabled
	}
}

// WithYAMLArgOptions registers an additional "<name>-yaml" option for every
// non-boolean argument, decoding with the YAML decoder only (no fallback).
// When both format option modes are enabled and both options are supplied
// for the same argument, the JSON-sourced value wins.
func WithYAMLArgOptions(enabled bool) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.yamlOptions = enabled
	}
}

// WithAllowExtraPositional tolerates leftover tokens that no positional slot
// consumes.
func WithAllowExtraPositional(allow bool) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.allowExtra = allow
	}
}

// WithBundling enables POSIX-style single-letter option bundling in the
// built-in matcher.
func WithBundling(bundling bool) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.bundling = bundling
	}
}

// WithMissingArgumentHook registers a callback that may resolve required
// arguments absent after binding.
func WithMissingArgumentHook(hook MissingArgumentFunc) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.missingHook = hook
	}
}

// WithPreGrammar prepends caller-supplied grammar entries. Pre-grammar
// entries can never be shadowed by derived entries.
func WithPreGrammar(entries ...parse.Option) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.preGrammar = append(b.preGrammar, entries...)
	}
}

// WithPostGrammar appends caller-supplied grammar entries. Post-grammar
// entries shadow derived entries with the same option name.
func WithPostGrammar(entries ...parse.Option) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.postGrammar = append(b.postGrammar, entries...)
	}
}

// WithMatcher substitutes the option matcher.
func WithMatcher(m parse.Matcher) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		if m == nil {
			*err = fmt.Errorf("invalid Matcher (should not be nil)")
			return
		}
		b.matcher = m
	}
}

// WithPositionalBinder substitutes the positional binder.
func WithPositionalBinder(pb PositionalBinder) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		if pb == nil {
			*err = fmt.Errorf("invalid PositionalBinder (should not be nil)")
			return
		}
		b.positional = pb
	}
}

// WithDecoders substitutes the structured-value decoder registry.
func WithDecoders(registry *decode.Registry) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		if registry == nil {
			*err = fmt.Errorf("invalid decoder registry (should not be nil)")
			return
		}
		b.registry = registry
	}
}

// WithTerminalReader substitutes the terminal used for secure input.
func WithTerminalReader(reader util.TerminalReader) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		b.terminal = reader
	}
}

// WithListDelimiterFunc sets the delimiter runes used when a scalar string
// is read through GetStrings. Defaults to ',', '|' and ' '.
func WithListDelimiterFunc(delimiterFunc util.ListDelimiterFunc) ConfigureBinderFunc {
	return func(b *Binder, err *error) {
		if delimiterFunc == nil {
			*err = fmt.Errorf("invalid ListDelimiterFunc (should not be nil)")
			return
		}
		b.delim = delimiterFunc
	}
}
