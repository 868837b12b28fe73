package argbind

import (
	"fmt"
	"time"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/argbind/argbind/util"
)

// ArgumentMap maps canonical argument names to decoded values in assignment
// order. Key presence encodes "was the argument supplied": a key holding a
// nil value is distinct from an absent key.
type ArgumentMap struct {
	om *orderedmap.OrderedMap
}

// NewArgumentMap creates an empty ArgumentMap.
func NewArgumentMap() *ArgumentMap {
	return &ArgumentMap{om: orderedmap.New()}
}

// Set stores a value under name, overwriting any previous value.
func (m *ArgumentMap) Set(name string, value any) {
	m.om.Set(name, value)
}

// Get returns the value stored under name and whether the key is present.
func (m *ArgumentMap) Get(name string) (any, bool) {
	return m.om.Get(name)
}

// Has reports whether name was assigned, regardless of its value.
func (m *ArgumentMap) Has(name string) bool {
	_, found := m.om.Get(name)

	return found
}

// Delete removes name from the map.
func (m *ArgumentMap) Delete(name string) {
	m.om.Delete(name)
}

// Len returns the number of assigned arguments.
func (m *ArgumentMap) Len() int {
	return m.om.Len()
}

// Names returns the assigned argument names in assignment order.
func (m *ArgumentMap) Names() []string {
	names := make([]string, 0, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

// ToMap copies the contents into a plain map. The presence distinction is
// lost for callers that range over it looking for nil.
func (m *ArgumentMap) ToMap() map[string]any {
	out := make(map[string]any, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key.(string)] = pair.Value
	}

	return out
}

// BindingResult is the outcome of one Bind invocation.
type BindingResult struct {
	// Status classifies the outcome; Err carries the typed failure when
	// Status is not Success.
	Status Status
	Err    error
	// Args holds the populated map. On failure it contains whatever was
	// bound before the failure.
	Args *ArgumentMap
	// MissingArgument names the first required argument that stayed
	// unresolved, even on success (callers running with required-checking
	// disabled inspect it).
	MissingArgument string

	defaults map[string]any
	delim    util.ListDelimiterFunc
}

// OK reports whether binding succeeded.
func (r *BindingResult) OK() bool {
	return r.Status == Success
}

// Message returns the human-readable failure message, or "" on success.
func (r *BindingResult) Message() string {
	if r.Err == nil {
		return ""
	}

	return r.Err.Error()
}

func (r *BindingResult) fail(status Status, err error) *BindingResult {
	r.Status = status
	r.Err = err

	return r
}

// Get returns the bound value for name. When the argument was not supplied
// but its specification declares a default, the default is returned with
// found=true - mirroring how unset flags fall back to their configured
// default value.
func (r *BindingResult) Get(name string) (any, bool) {
	if v, found := r.Args.Get(name); found {
		return v, true
	}
	if def, found := r.defaults[name]; found {
		return def, true
	}

	return nil, false
}

// GetOrDefault returns the bound value for name or fallback when unset.
func (r *BindingResult) GetOrDefault(name string, fallback any) any {
	if v, found := r.Get(name); found {
		return v
	}

	return fallback
}

// GetString converts the bound value of name to a string.
func (r *BindingResult) GetString(name string) (string, error) {
	v, found := r.Get(name)
	if !found {
		return "", fmt.Errorf(FmtErrorWithString, ErrArgumentNotSet, name)
	}

	return util.ToString(v)
}

// GetBool converts the bound value of name to a bool.
func (r *BindingResult) GetBool(name string) (bool, error) {
	v, found := r.Get(name)
	if !found {
		return false, fmt.Errorf(FmtErrorWithString, ErrArgumentNotSet, name)
	}

	return util.ToBool(v)
}

// GetInt converts the bound value of name to an int64.
func (r *BindingResult) GetInt(name string) (int64, error) {
	v, found := r.Get(name)
	if !found {
		return 0, fmt.Errorf(FmtErrorWithString, ErrArgumentNotSet, name)
	}

	return util.ToInt64(v)
}

// GetFloat converts the bound value of name to a float64.
func (r *BindingResult) GetFloat(name string) (float64, error) {
	v, found := r.Get(name)
	if !found {
		return 0, fmt.Errorf(FmtErrorWithString, ErrArgumentNotSet, name)
	}

	return util.ToFloat64(v)
}

// GetTime converts the bound value of name to a time.Time. String values
// are parsed in any of the layouts dateparse recognizes.
func (r *BindingResult) GetTime(name string) (time.Time, error) {
	v, found := r.Get(name)
	if !found {
		return time.Time{}, fmt.Errorf(FmtErrorWithString, ErrArgumentNotSet, name)
	}

	return util.ToTime(v)
}

// GetStrings converts the bound value of name to a string slice. Scalar
// strings are split on the binder's list delimiters.
func (r *BindingResult) GetStrings(name string) ([]string, error) {
	v, found := r.Get(name)
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrArgumentNotSet, name)
	}

	return util.ToStrings(v, r.delim)
}
