package argbind

import (
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/argbind/argbind/schema"
)

// Secure solicits non-echoed user input from the terminal when a required
// argument is missing after binding. If Prompt is empty a "password: "
// prompt is displayed.
type Secure struct {
	IsSecure bool
	Prompt   string
}

// AliasHandler is the tagged handler variant of an alias: either an inline
// callback, or a marker recording that the callback was lost when the
// specification crossed a process or network boundary. A lost handler only
// fails the binding when its option token actually appears on the command
// line.
type AliasHandler struct {
	fn   AliasHandlerFunc
	lost bool
}

// AliasCode wraps an inline alias callback.
func AliasCode(fn AliasHandlerFunc) *AliasHandler {
	return &AliasHandler{fn: fn}
}

// AliasCodeLost marks an alias whose callback arrived as a non-executable
// transport marker.
func AliasCodeLost() *AliasHandler {
	return &AliasHandler{lost: true}
}

// Lost reports whether the handler degenerated to a transport marker.
func (h *AliasHandler) Lost() bool {
	return h != nil && h.lost
}

// AliasSpec declares an alternate option name for an argument. Schema, when
// set, overrides the argument's own type descriptor for values supplied
// through the alias.
type AliasSpec struct {
	Schema  any
	Handler *AliasHandler

	typeOf *schema.TypeDescriptor
	class  schema.Class
}

// ArgumentSpec declares one bindable argument. Specifications are owned by
// the caller and treated as read-only by the engine: binding works on a
// normalized clone.
type ArgumentSpec struct {
	Name        string
	Description string
	// Schema is the raw type descriptor: a shorthand string such as "int"
	// or "[]str", or a *schema.TypeDescriptor.
	Schema   any
	Required bool
	// Position binds the argument to a positional slot in the leftover
	// tokens.
	Position *int
	// Greedy positional arguments absorb all remaining tokens as a list.
	Greedy bool
	// StrictFlag suppresses the implicit "--no-" negation form of a
	// multi-letter boolean option.
	StrictFlag bool
	// Default is surfaced through the typed accessors; it is never injected
	// into the argument map itself.
	Default  any
	Secure   Secure
	Aliases  map[string]*AliasSpec
	OnAssign AssignHookFunc

	typeOf *schema.TypeDescriptor
	class  schema.Class
}

// NewSpec configures an ArgumentSpec using option functions.
func NewSpec(configs ...ConfigureSpecFunc) *ArgumentSpec {
	spec := &ArgumentSpec{}
	for _, config := range configs {
		config(spec, nil)
	}

	return spec
}

// Set configures the ArgumentSpec with the provided ConfigureSpecFunc(s) and
// returns the first configuration error.
func (a *ArgumentSpec) Set(configs ...ConfigureSpecFunc) error {
	a.ensureInit()
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *ArgumentSpec) ensureInit() {
	if a.Aliases == nil {
		a.Aliases = map[string]*AliasSpec{}
	}
}

func (a *ArgumentSpec) isPositional() bool {
	return a.Position != nil
}

// TypeOf returns the normalized type descriptor. It is only set on the
// engine's clone of the specification.
func (a *ArgumentSpec) TypeOf() *schema.TypeDescriptor {
	return a.typeOf
}

// Class returns the decoding class of the normalized descriptor.
func (a *ArgumentSpec) Class() schema.Class {
	return a.class
}

// String returns a short human-readable description of the spec.
func (a *ArgumentSpec) String() string {
	requiredOrOptional := "optional"
	if a.Required {
		requiredOrOptional = "required"
	}
	td, err := schema.Normalize(a.Schema)
	if err != nil {
		return fmt.Sprintf("%s (%s)", a.Name, requiredOrOptional)
	}

	return fmt.Sprintf("%s %s (%s)", a.Name, td, requiredOrOptional)
}

// aliasNames returns the alias names in deterministic order.
func (a *ArgumentSpec) aliasNames() []string {
	names := make([]string, 0, len(a.Aliases))
	for name := range a.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// SpecSet is an insertion-ordered collection of argument specifications.
// Iteration order decides grammar order and which missing required argument
// is reported first.
type SpecSet struct {
	// Version gates the specification format; only version 1 is understood.
	Version int
	specs   *orderedmap.OrderedMap
}

// NewSpecSet creates an empty version-1 SpecSet.
func NewSpecSet() *SpecSet {
	return &SpecSet{
		Version: 1,
		specs:   orderedmap.New(),
	}
}

// Add declares an argument under its canonical name. Adding the same name
// twice is an error.
func (s *SpecSet) Add(name string, spec *ArgumentSpec) error {
	if name == "" {
		return fmt.Errorf("can't declare an argument with an empty name")
	}
	if _, exists := s.specs.Get(name); exists {
		return fmt.Errorf(FmtErrorWithString, ErrDuplicateSpec, name)
	}
	spec.ensureInit()
	spec.Name = name
	s.specs.Set(name, spec)

	return nil
}

// AddSpec declares an argument configured through option functions.
func (s *SpecSet) AddSpec(name string, configs ...ConfigureSpecFunc) error {
	spec := &ArgumentSpec{}
	if err := spec.Set(configs...); err != nil {
		return err
	}

	return s.Add(name, spec)
}

// Get returns the specification declared under name.
func (s *SpecSet) Get(name string) (*ArgumentSpec, bool) {
	v, found := s.specs.Get(name)
	if !found {
		return nil, false
	}

	return v.(*ArgumentSpec), true
}

// Len returns the number of declared arguments.
func (s *SpecSet) Len() int {
	return s.specs.Len()
}

// Names returns the canonical argument names in declaration order.
func (s *SpecSet) Names() []string {
	names := make([]string, 0, s.specs.Len())
	for pair := s.specs.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

// each iterates specifications in declaration order until fn returns false.
func (s *SpecSet) each(fn func(name string, spec *ArgumentSpec) bool) {
	for pair := s.specs.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key.(string), pair.Value.(*ArgumentSpec)) {
			return
		}
	}
}

// normalized deep-clones the set, normalizes every type descriptor
// (including alias overrides and list element types) and computes each
// argument's decoding class once. The caller's specifications are never
// mutated.
func (s *SpecSet) normalized() (*SpecSet, error) {
	clone := NewSpecSet()
	clone.Version = s.Version

	var err error
	s.each(func(name string, spec *ArgumentSpec) bool {
		cp := *spec
		cp.typeOf, err = schema.Normalize(spec.Schema)
		if err != nil {
			err = fmt.Errorf("argument '%s': %w", name, err)
			return false
		}
		cp.class = schema.Classify(cp.typeOf)

		if spec.Position != nil {
			pos := *spec.Position
			cp.Position = &pos
		}

		cp.Aliases = make(map[string]*AliasSpec, len(spec.Aliases))
		for aliasName, alias := range spec.Aliases {
			ac := *alias
			raw := alias.Schema
			if raw == nil {
				raw = spec.Schema
			}
			ac.typeOf, err = schema.Normalize(raw)
			if err != nil {
				err = fmt.Errorf("alias '%s' of argument '%s': %w", aliasName, name, err)
				return false
			}
			ac.class = schema.Classify(ac.typeOf)
			cp.Aliases[aliasName] = &ac
		}

		clone.specs.Set(name, &cp)
		return true
	})
	if err != nil {
		return nil, err
	}

	return clone, nil
}
