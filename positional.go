package argbind

import (
	"fmt"
	"sort"
)

// PositionalBinder consumes the tokens left over after option matching and
// assigns them to the specifications carrying a positional index. A greedy
// positional absorbs all remaining tokens from its index onward as an
// ordered []string; other slots take exactly one token. Unconsumed tokens
// are a structural error unless allowExtra is set.
type PositionalBinder interface {
	Bind(leftover []string, specs *SpecSet, allowExtra bool) (map[string]any, error)
}

// SlotBinder is the built-in PositionalBinder.
type SlotBinder struct{}

// NewPositionalBinder returns a SlotBinder.
func NewPositionalBinder() *SlotBinder {
	return &SlotBinder{}
}

func (*SlotBinder) Bind(leftover []string, specs *SpecSet, allowExtra bool) (map[string]any, error) {
	type slot struct {
		name string
		spec *ArgumentSpec
	}

	var slots []slot
	specs.each(func(name string, spec *ArgumentSpec) bool {
		if spec.isPositional() {
			slots = append(slots, slot{name: name, spec: spec})
		}
		return true
	})
	sort.SliceStable(slots, func(i, j int) bool {
		return *slots[i].spec.Position < *slots[j].spec.Position
	})

	bound := make(map[string]any, len(slots))
	used := make([]bool, len(leftover))
	for _, sl := range slots {
		idx := *sl.spec.Position
		if idx >= len(leftover) {
			continue
		}

		if sl.spec.Greedy {
			tail := make([]string, len(leftover)-idx)
			copy(tail, leftover[idx:])
			bound[sl.name] = tail
			for i := idx; i < len(leftover); i++ {
				used[i] = true
			}
			break
		}

		bound[sl.name] = leftover[idx]
		used[idx] = true
	}

	if !allowExtra {
		var extra []string
		for i, tok := range leftover {
			if !used[i] {
				extra = append(extra, tok)
			}
		}
		if len(extra) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrExtraPositional, extra)
		}
	}

	return bound, nil
}
