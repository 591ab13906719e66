//go:build linux

package remap

import (
	"fmt"
	"sort"

	"github.com/andrieee44/evremap/mapping"
)

// GuardRef points at a single bit within a GuardState: the guard to
// update and the bit index within it.
type GuardRef struct {
	Guard *GuardState
	Bit   int
}

// CompiledRule is a mapping.Rule bound to its shared GuardState, ready
// for dispatch. Mappings keeps the rule's full src -> dst table: a
// trigger on a `when` key may re-map other, currently-held keys too, so
// the whole table -- not just an entry for the triggering key -- must
// travel with the rule. A src may equal a key in when or be disjoint
// from it.
type CompiledRule struct {
	Guard    *GuardState
	Mappings []mapping.Mapping

	// Index mirrors the originating mapping.Rule.Index, used to break
	// ties when more than one rule claims the same src at once
	// (Design Notes "Deterministic iteration").
	Index int
}

// KeyEntry is everything the state machine needs to know about a single
// physical KeyCode: which guard bits it toggles on press/release, and
// which rules it may trigger.
type KeyEntry struct {
	CondSet   []GuardRef
	CondUnset []GuardRef
	Trigger   []*CompiledRule
}

// compiler turns a rule list into a key-indexed dispatch table, deduping
// identical (cond, except) guards into a single shared GuardState.
type compiler struct {
	keyMap map[mapping.KeyCode]*KeyEntry
	guards map[string]*GuardState
}

// Compile builds the dispatch table used by a StateMachine from a
// configuration's rules, in the order given by mapping.Load (rule.Index
// already reflects file order).
func Compile(rules []mapping.Rule) map[mapping.KeyCode]*KeyEntry {
	var (
		c     compiler
		r     mapping.Rule
		cr    *CompiledRule
		w     mapping.KeyCode
		entry *KeyEntry
	)

	c = compiler{
		keyMap: make(map[mapping.KeyCode]*KeyEntry),
		guards: make(map[string]*GuardState),
	}

	for _, r = range rules {
		cr = &CompiledRule{
			Guard:    c.guardFor(r.Cond, r.Except),
			Mappings: r.Mappings,
			Index:    r.Index,
		}

		for _, w = range r.When {
			entry = c.entry(w)
			entry.Trigger = append(entry.Trigger, cr)
		}
	}

	return c.keyMap
}

// guardFor returns the shared GuardState for a (cond, except) pair,
// creating it and wiring its bit references into keyMap the first time
// the pair is seen.
func (c *compiler) guardFor(cond, except []mapping.KeyCode) *GuardState {
	var (
		key   string
		g     *GuardState
		ok    bool
		i     int
		k     mapping.KeyCode
		entry *KeyEntry
	)

	key = guardKey(cond, except)

	g, ok = c.guards[key]
	if ok {
		return g
	}

	g = newGuardState(len(cond), len(cond)+len(except))
	c.guards[key] = g

	for i, k = range cond {
		entry = c.entry(k)
		entry.CondSet = append(entry.CondSet, GuardRef{Guard: g, Bit: i})
	}

	for i, k = range except {
		entry = c.entry(k)
		entry.CondUnset = append(entry.CondUnset, GuardRef{Guard: g, Bit: len(cond) + i})
	}

	return g
}

func (c *compiler) entry(k mapping.KeyCode) *KeyEntry {
	var (
		e  *KeyEntry
		ok bool
	)

	e, ok = c.keyMap[k]
	if !ok {
		e = &KeyEntry{}
		c.keyMap[k] = e
	}

	return e
}

// guardKey canonicalizes a (cond, except) pair into a dedup key
// independent of the order the lists were written in the config file.
func guardKey(cond, except []mapping.KeyCode) string {
	var sorted = func(ks []mapping.KeyCode) []mapping.KeyCode {
		var out = make([]mapping.KeyCode, len(ks))

		copy(out, ks)
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

		return out
	}

	return fmt.Sprintf("%v|%v", sorted(cond), sorted(except))
}
