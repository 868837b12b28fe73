package argbind

import (
	"fmt"

	"github.com/argbind/argbind/schema"
	"github.com/argbind/argbind/util"
)

// fillAccessors wires the typed accessor layer of the result: declared
// defaults and the list delimiter set.
func (b *Binder) fillAccessors(res *BindingResult, specs *SpecSet) {
	res.delim = b.delim
	specs.each(func(name string, spec *ArgumentSpec) bool {
		if spec.Default != nil {
			if res.defaults == nil {
				res.defaults = map[string]any{}
			}
			res.defaults[name] = spec.Default
		}
		return true
	})
}

// applyPositional runs the positional binder over the leftover tokens and
// merges its bindings into the argument map. Option-sourced values win;
// under strict mode the overlap is a conflict error. Non-scalar positional
// values go through the structured decoders: greedy lists element-wise,
// other values whole. Decode failures are fatal when strict, otherwise the
// raw string is kept. Returns a failed result or nil to continue.
func (b *Binder) applyPositional(res *BindingResult, specs *SpecSet, leftover []string) *BindingResult {
	bound, err := b.positional.Bind(leftover, specs, b.allowExtra)
	if err != nil {
		if !b.strict {
			return nil
		}
		return res.fail(ClientError, err)
	}

	var failed *BindingResult
	specs.each(func(name string, spec *ArgumentSpec) bool {
		value, ok := bound[name]
		if !ok {
			return true
		}

		if res.Args.Has(name) {
			// lenient mode prefers the option-sourced value
			if b.strict {
				failed = res.fail(ClientError, fmt.Errorf("%w: argument '%s'", ErrOptionPositionalConflict, name))
				return false
			}
			return true
		}

		if spec.Greedy {
			raw := value.([]string)
			list := make([]any, len(raw))
			for j, elem := range raw {
				decoded, ok := b.registry.Decode(elem)
				if !ok {
					if b.strict {
						failed = res.fail(ClientError, fmt.Errorf(
							"%w at positional index %d, element %d", ErrInvalidStructuredValue, *spec.Position, j))
						return false
					}
					decoded = elem
				}
				list[j] = decoded
			}
			res.Args.Set(name, list)
			if spec.OnAssign != nil {
				for _, elem := range list {
					spec.OnAssign(name, elem, res.Args, SourcePositional)
				}
			}
			return true
		}

		stored := value
		if spec.class != schema.Scalar {
			decoded, ok := b.registry.Decode(value.(string))
			if !ok {
				if b.strict {
					failed = res.fail(ClientError, fmt.Errorf(
						"%w at positional index %d in argument '%s'", ErrInvalidStructuredValue, *spec.Position, name))
					return false
				}
				decoded = value
			}
			stored = decoded
		}
		res.Args.Set(name, stored)
		if spec.OnAssign != nil {
			spec.OnAssign(name, stored, res.Args, SourcePositional)
		}

		return true
	})

	return failed
}

// resolveSecure prompts for required secure arguments that are still unset.
// Prompt failures are not fatal here; the required sweep decides.
func (b *Binder) resolveSecure(res *BindingResult, specs *SpecSet) {
	specs.each(func(name string, spec *ArgumentSpec) bool {
		if !spec.Secure.IsSecure || !spec.Required || res.Args.Has(name) {
			return true
		}

		prompt := spec.Secure.Prompt
		if prompt == "" {
			prompt = "password: "
		}
		value, err := util.GetSecureString(prompt, b.terminal)
		if err != nil {
			return true
		}

		res.Args.Set(name, value)
		if spec.OnAssign != nil {
			spec.OnAssign(name, value, res.Args, SourceSecure)
		}

		return true
	})
}

// sweepRequired walks the specifications in declaration order, gives the
// missing-argument hook a chance to resolve each absent required argument,
// remembers the first unresolved one, and fails when both required checking
// and strict mode are active.
func (b *Binder) sweepRequired(res *BindingResult, specs *SpecSet) *BindingResult {
	var failed *BindingResult
	specs.each(func(name string, spec *ArgumentSpec) bool {
		if !spec.Required || res.Args.Has(name) {
			return true
		}
		if b.missingHook != nil && b.missingHook(name, res.Args, spec) {
			return true
		}

		if res.MissingArgument == "" {
			res.MissingArgument = name
		}
		if b.checkRequired && b.strict {
			failed = res.fail(ClientError, fmt.Errorf(FmtErrorWithString, ErrMissingRequiredArgument, name))
			return false
		}

		return true
	})
	if failed != nil {
		return failed
	}

	return res
}
