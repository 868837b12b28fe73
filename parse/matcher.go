package parse

import (
	"fmt"
	"strings"

	"github.com/ef-ds/deque"
)

// DefaultMatcher is the built-in Matcher. It supports long options
// ("--name", "--name=value", "--name value"), negated long booleans
// ("--no-name"), short options ("-n", "-n value") and, when enabled,
// POSIX-style bundling. A bare "--" terminates option parsing; every later
// token is leftover. Options and operands may be freely interleaved when
// permuted parsing is requested. On a grammar name collision the entry
// registered first wins.
type DefaultMatcher struct{}

// NewMatcher returns a DefaultMatcher.
func NewMatcher() *DefaultMatcher {
	return &DefaultMatcher{}
}

func (m *DefaultMatcher) Match(args []string, grammar []Option, mode MatchMode) ([]string, error) {
	lookup := make(map[string]*Option, len(grammar))
	for i := range grammar {
		opt := &grammar[i]
		if _, exists := lookup[opt.Name]; !exists {
			lookup[opt.Name] = opt
		}
	}

	pending := deque.New()
	for _, a := range args {
		pending.PushBack(a)
	}

	var leftover []string
	terminated := false

	for pending.Len() > 0 {
		front, _ := pending.PopFront()
		tok := front.(string)

		if terminated || !isOption(tok) {
			leftover = append(leftover, tok)
			if !mode.Permute && !terminated {
				terminated = true
			}
			continue
		}

		if tok == "--" {
			terminated = true
			continue
		}

		var err error
		if strings.HasPrefix(tok, "--") {
			err = m.matchLong(tok, lookup, pending, mode)
		} else {
			err = m.matchShort(tok, lookup, pending, mode, &leftover)
		}
		if err != nil {
			if err == errPassThrough {
				leftover = append(leftover, tok)
				continue
			}
			return nil, err
		}
	}

	return leftover, nil
}

// errPassThrough signals an unknown option under permissive matching.
var errPassThrough = fmt.Errorf("pass through")

func (m *DefaultMatcher) matchLong(tok string, lookup map[string]*Option, pending *deque.Deque, mode MatchMode) error {
	name := strings.TrimPrefix(tok, "--")
	value := ""
	hasValue := false
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		value = name[eq+1:]
		name = name[:eq]
		hasValue = true
	}

	opt, found := lookup[name]
	negated := false
	if !found {
		// "--no-foo" binds to a negatable "foo" unless a literal "no-foo"
		// was registered
		if stripped, ok := strings.CutPrefix(name, "no-"); ok {
			if cand, ok := lookup[stripped]; ok && cand.Negatable {
				opt, found, negated = cand, true, true
			}
		}
	}
	if !found {
		if mode.Strict {
			return fmt.Errorf("%w: --%s", ErrUnknownOption, name)
		}
		return errPassThrough
	}

	source := "--" + name

	if !opt.TakesValue {
		if !hasValue {
			value = "true"
			if negated {
				value = "false"
			}
		}
		return opt.Handler(source, value)
	}

	if !hasValue {
		next, ok := pending.PopFront()
		if !ok {
			return fmt.Errorf("%w: --%s", ErrMissingValue, name)
		}
		value = next.(string)
	}

	return opt.Handler(source, value)
}

func (m *DefaultMatcher) matchShort(tok string, lookup map[string]*Option, pending *deque.Deque, mode MatchMode, leftover *[]string) error {
	body := strings.TrimPrefix(tok, "-")

	if len(body) > 1 && !mode.Bundling {
		// single-dash multi-letter tokens are matched as one name, the way
		// long-form options are
		if opt, found := lookup[body]; found {
			return m.invokeShort(opt, "-"+body, pending)
		}
		if mode.Strict {
			return fmt.Errorf("%w: -%s", ErrUnknownOption, body)
		}
		return errPassThrough
	}

	for i := 0; i < len(body); i++ {
		name := body[i : i+1]
		opt, found := lookup[name]
		if !found {
			if mode.Strict {
				return fmt.Errorf("%w: -%s in '%s'", ErrUnknownOption, name, tok)
			}
			if i == 0 {
				return errPassThrough
			}
			return fmt.Errorf("%w: -%s in '%s'", ErrInvalidBundling, name, tok)
		}

		if opt.TakesValue {
			// the remainder of the bundle is the value ("-ovalue")
			if rest := body[i+1:]; rest != "" {
				return opt.Handler("-"+name, rest)
			}
			return m.invokeShort(opt, "-"+name, pending)
		}

		if err := opt.Handler("-"+name, "true"); err != nil {
			return err
		}
	}

	return nil
}

func (m *DefaultMatcher) invokeShort(opt *Option, source string, pending *deque.Deque) error {
	if !opt.TakesValue {
		return opt.Handler(source, "true")
	}

	next, ok := pending.PopFront()
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingValue, source)
	}

	return opt.Handler(source, next.(string))
}

// isOption reports whether tok looks like an option token. A lone "-" is an
// operand by convention.
func isOption(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}
