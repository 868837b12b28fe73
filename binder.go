package argbind

import (
	"errors"
	"fmt"

	"github.com/argbind/argbind/decode"
	"github.com/argbind/argbind/parse"
	"github.com/argbind/argbind/util"
)

// Binder turns a specification set into parsing behavior: it builds the
// option grammar, runs the matcher over an argument vector, absorbs leftover
// tokens into positional slots and enforces required arguments. A Binder is
// cheap to construct and holds no per-invocation state; each Bind call works
// on its own normalized clone of the specification set, so the caller's
// specs are never mutated. The argv slice passed to Bind is read-only.
type Binder struct {
	specs         *SpecSet
	matcher       parse.Matcher
	positional    PositionalBinder
	registry      *decode.Registry
	strict        bool
	checkRequired bool
	jsonOptions   bool
	yamlOptions   bool
	allowExtra    bool
	bundling      bool
	missingHook   MissingArgumentFunc
	preGrammar    []parse.Option
	postGrammar   []parse.Option
	terminal      util.TerminalReader
	delim         util.ListDelimiterFunc
}

// NewBinder creates a Binder over specs. Defaults: strict mode on, required
// checking on, JSON-then-YAML decoders, built-in matcher and positional
// binder, no per-argument format options.
func NewBinder(specs *SpecSet, configs ...ConfigureBinderFunc) (*Binder, error) {
	b := &Binder{
		specs:         specs,
		matcher:       parse.NewMatcher(),
		positional:    NewPositionalBinder(),
		registry:      decode.NewRegistry(),
		strict:        true,
		checkRequired: true,
		terminal:      util.StdinTerminal{},
		delim:         util.DefaultListDelimiters,
	}

	var err error
	for _, config := range configs {
		config(b, &err)
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Bind matches argv against the specification set and returns the populated
// argument map or a typed failure. argv is never modified. Handler panics
// are caught at this boundary and reported as server errors.
func (b *Binder) Bind(argv []string) (res *BindingResult) {
	res = &BindingResult{Status: Success, Args: NewArgumentMap()}

	defer func() {
		if p := recover(); p != nil {
			res.Status = ServerError
			res.Err = fmt.Errorf("internal handler failure: %v", p)
		}
	}()

	if b.specs == nil {
		return res.fail(ClientError, ErrNoSpecs)
	}
	if b.specs.Version != 1 {
		return res.fail(ClientError, fmt.Errorf("%w: %d", ErrUnsupportedSpecVersion, b.specs.Version))
	}

	specs, err := b.specs.normalized()
	if err != nil {
		return res.fail(ClientError, err)
	}
	b.fillAccessors(res, specs)

	pins := map[string]bool{}
	grammar, err := b.buildGrammar(specs, res.Args, argv, pins)
	if err != nil {
		// a handler lost in transport fails hard regardless of strict mode
		return res.fail(ServerError, err)
	}

	mode := parse.MatchMode{Strict: b.strict, Permute: true, Bundling: b.bundling}
	leftover, err := b.matcher.Match(argv, grammar, mode)
	if err != nil {
		if errors.Is(err, ErrAliasHandlerLost) {
			return res.fail(ServerError, err)
		}
		if !b.strict {
			// lenient mode returns the partially filled map
			return res
		}
		if errors.Is(err, ErrInvalidStructuredValue) {
			return res.fail(ClientError, err)
		}
		return res.fail(ClientError, fmt.Errorf("%w: %v", ErrOptionParsingFailed, err))
	}

	if len(leftover) > 0 {
		if failed := b.applyPositional(res, specs, leftover); failed != nil {
			return failed
		}
	}

	b.resolveSecure(res, specs)

	return b.sweepRequired(res, specs)
}

// BindString splits a raw command line with shell-style quoting rules and
// binds the resulting argument vector.
func (b *Binder) BindString(cmdline string) *BindingResult {
	argv, err := parse.Split(cmdline)
	if err != nil {
		res := &BindingResult{Args: NewArgumentMap()}
		return res.fail(ClientError, fmt.Errorf("%w: %v", ErrOptionParsingFailed, err))
	}

	return b.Bind(argv)
}

// Specs returns the specification set the binder was constructed over.
func (b *Binder) Specs() *SpecSet {
	return b.specs
}
