package argbind

import "fmt"

// WithDescription the description is used in String() output and by callers
// that render their own usage text.
func WithDescription(description string) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Description = description
	}
}

// WithSchema sets the raw type descriptor - a shorthand string such as
// "int", "[]str" or "map", or a *schema.TypeDescriptor.
func WithSchema(descriptor any) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Schema = descriptor
	}
}

// SetRequired when true, the argument must be supplied on the command line
// or resolved by the missing-argument hook.
func SetRequired(required bool) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Required = required
	}
}

// WithPosition binds the argument to a positional slot among the tokens left
// over after option matching.
func WithPosition(idx int) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		if idx < 0 {
			*err = fmt.Errorf("positional index must be non-negative, got: %d", idx)
			return
		}
		spec.Position = &idx
	}
}

// SetGreedy when true, the positional argument absorbs all remaining tokens
// from its index onward as a list.
func SetGreedy(greedy bool) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Greedy = greedy
	}
}

// SetStrictFlag suppresses the implicit "--no-" negation form of a
// multi-letter boolean option.
func SetStrictFlag(strict bool) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.StrictFlag = strict
	}
}

// WithDefault sets the value surfaced by the typed accessors when the
// argument was not supplied. Defaults never appear in the argument map.
func WithDefault(value any) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Default = value
	}
}

// SetSecure sets the secure flag to true or false.
func SetSecure(secure bool) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Secure.IsSecure = secure
	}
}

// WithSecurePrompt sets the prompt displayed when secure input is solicited.
func WithSecurePrompt(prompt string) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.Secure.IsSecure = true
		spec.Secure.Prompt = prompt
	}
}

// WithAlias declares an alternate option name. alias may be nil for a plain
// alias that reuses the argument's own type descriptor and default decoding.
func WithAlias(name string, alias *AliasSpec) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		if name == "" {
			*err = fmt.Errorf("can't declare an alias with an empty name")
			return
		}
		if alias == nil {
			alias = &AliasSpec{}
		}
		spec.ensureInit()
		spec.Aliases[name] = alias
	}
}

// WithAssignHook registers a callback invoked after every successful
// assignment to this argument.
func WithAssignHook(hook AssignHookFunc) ConfigureSpecFunc {
	return func(spec *ArgumentSpec, err *error) {
		spec.OnAssign = hook
	}
}
