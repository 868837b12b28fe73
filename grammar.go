package argbind

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/argbind/argbind/parse"
	"github.com/argbind/argbind/schema"
)

// optionToken converts a canonical argument name to its option-token form:
// underscores become hyphens.
func optionToken(name string) string {
	return strcase.ToKebab(name)
}

// buildGrammar translates the normalized specification set into an ordered
// option grammar: caller pre-grammar entries first (they can never be
// shadowed, the matcher resolves collisions first-registered-wins), then the
// derived entries in specification order, then caller post-grammar entries.
// Derived entries colliding with a post-grammar name are dropped so post
// entries shadow them.
//
// argv is consulted for one purpose only: an alias whose handler was lost in
// transport fails the build immediately when its option token actually
// appears on the command line.
func (b *Binder) buildGrammar(specs *SpecSet, args *ArgumentMap, argv []string, pins map[string]bool) ([]parse.Option, error) {
	postNames := make(map[string]bool, len(b.postGrammar))
	for _, entry := range b.postGrammar {
		postNames[entry.Name] = true
	}

	grammar := make([]parse.Option, 0, len(b.preGrammar)+specs.Len()+len(b.postGrammar))
	grammar = append(grammar, b.preGrammar...)

	var buildErr error
	specs.each(func(name string, spec *ArgumentSpec) bool {
		token := optionToken(name)

		if !postNames[token] {
			grammar = append(grammar, parse.Option{
				Name:       token,
				TakesValue: !spec.typeOf.IsBool(),
				Negatable:  negatable(token, spec),
				Handler:    b.assignHandler(spec, args, spec.typeOf, spec.class),
			})
		}

		// per-argument format-named options, non-boolean arguments only
		if !spec.typeOf.IsBool() {
			if b.jsonOptions && !postNames[token+"-json"] {
				grammar = append(grammar, parse.Option{
					Name:       token + "-json",
					TakesValue: true,
					Handler:    b.formatHandler(spec, args, "json", pins),
				})
			}
			if b.yamlOptions && !postNames[token+"-yaml"] {
				grammar = append(grammar, parse.Option{
					Name:       token + "-yaml",
					TakesValue: true,
					Handler:    b.formatHandler(spec, args, "yaml", pins),
				})
			}
		}

		for _, aliasName := range spec.aliasNames() {
			alias := spec.Aliases[aliasName]
			aliasToken := optionToken(aliasName)
			if postNames[aliasToken] {
				continue
			}

			entry := parse.Option{
				Name:       aliasToken,
				TakesValue: !alias.typeOf.IsBool(),
				Negatable:  alias.typeOf.IsBool() && len(aliasToken) > 1 && !spec.StrictFlag,
			}

			switch {
			case alias.Handler.Lost():
				if optionInArgv(argv, aliasToken) {
					buildErr = fmt.Errorf("%w: alias '%s' of argument '%s'", ErrAliasHandlerLost, aliasName, name)
					return false
				}
				entry.Handler = func(source, value string) error {
					return fmt.Errorf("%w: alias '%s' of argument '%s'", ErrAliasHandlerLost, aliasName, name)
				}
			case alias.Handler != nil:
				fn := alias.Handler.fn
				entry.Handler = func(source, value string) error {
					return fn(value, args)
				}
			default:
				entry.Handler = b.assignHandler(spec, args, alias.typeOf, alias.class)
			}

			grammar = append(grammar, entry)
		}

		return true
	})
	if buildErr != nil {
		return nil, buildErr
	}

	return append(grammar, b.postGrammar...), nil
}

// negatable long multi-letter booleans implicitly pair "--flag" with
// "--no-flag"; single-letter and strict-flag booleans never gain the
// negation form.
func negatable(token string, spec *ArgumentSpec) bool {
	return spec.typeOf.IsBool() && len(token) > 1 && !spec.StrictFlag
}

// assignHandler builds the default option handler for one argument,
// dispatching on the decoding class computed during normalization.
func (b *Binder) assignHandler(spec *ArgumentSpec, args *ArgumentMap, typeOf *schema.TypeDescriptor, class schema.Class) parse.HandlerFunc {
	name := spec.Name

	return func(source, value string) error {
		var stored any

		switch {
		case typeOf.IsBool():
			val, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean value '%s' for %s", value, source)
			}
			stored = val
			args.Set(name, stored)
		case class == schema.ListOfScalar:
			list, _ := args.Get(name)
			elems, _ := list.([]string)
			elems = append(elems, value)
			stored = value
			args.Set(name, elems)
		case class == schema.Scalar:
			stored = value
			args.Set(name, stored)
		default:
			decoded, ok := b.registry.Decode(value)
			if !ok {
				return fmt.Errorf("%w in argument '%s'", ErrInvalidStructuredValue, name)
			}
			stored = decoded
			args.Set(name, stored)
		}

		if spec.OnAssign != nil {
			spec.OnAssign(name, stored, args, source)
		}

		return nil
	}
}

// formatHandler builds the handler of a per-argument "<name>-json" or
// "<name>-yaml" option: exactly one decoder, no fallback. A value assigned
// through the json option is pinned so a later yaml occurrence for the same
// argument cannot overwrite it.
func (b *Binder) formatHandler(spec *ArgumentSpec, args *ArgumentMap, format string, pins map[string]bool) parse.HandlerFunc {
	name := spec.Name

	return func(source, value string) error {
		dec, ok := b.registry.Lookup(format)
		if !ok {
			return fmt.Errorf("%w: no %s decoder registered", ErrInvalidStructuredValue, format)
		}
		if format == "yaml" && pins[name] {
			return nil
		}

		decoded, ok := dec.Decode(value)
		if !ok {
			return fmt.Errorf("%w in argument '%s': does not parse as %s", ErrInvalidStructuredValue, name, format)
		}
		if format == "json" {
			pins[name] = true
		}
		args.Set(name, decoded)

		if spec.OnAssign != nil {
			spec.OnAssign(name, decoded, args, source)
		}

		return nil
	}
}

// optionInArgv reports whether the option token appears in argv before a
// bare "--" terminator, in any of its spellings.
func optionInArgv(argv []string, token string) bool {
	long := "--" + token
	short := "-" + token
	negated := "--no-" + token

	for _, arg := range argv {
		if arg == "--" {
			return false
		}
		if arg == long || arg == short || arg == negated {
			return true
		}
		if strings.HasPrefix(arg, long+"=") || strings.HasPrefix(arg, negated+"=") {
			return true
		}
	}

	return false
}
