//go:build linux

package remap

import (
	"sort"

	"github.com/andrieee44/evremap/mapping"
	"github.com/sirupsen/logrus"
)

// EventType is the semantic classification of a key event the state
// machine dispatches on, decoded upstream from the kernel's raw Value
// field (0=Release, 1=Press, 2=Repeat, anything else=Unknown).
type EventType int

const (
	Release EventType = iota
	Press
	Repeat
)

// OutputEvent is one key transition the state machine wants emitted on
// the virtual device, in the order it must be written. Value mirrors
// the kernel's raw EV_KEY value (0=release, 1=press, 2=repeat).
type OutputEvent struct {
	Code  mapping.KeyCode
	Value int32
}

// StateMachine holds the compiled dispatch table and the live bimap
// between physical and virtual key state.
type StateMachine struct {
	keyMap map[mapping.KeyCode]*KeyEntry
	log    *logrus.Logger

	// inputState maps a physical key currently held to the set of
	// virtual keys it is currently driving down. A physical key is
	// "held" iff it has an entry here.
	inputState map[mapping.KeyCode][]mapping.KeyCode

	// outputState maps a virtual key currently pressed to the set of
	// physical keys responsible for holding it down. A virtual key is
	// "pressed" iff it has a non-empty entry here. inputState and
	// outputState are inverses by construction.
	outputState map[mapping.KeyCode][]mapping.KeyCode
}

// NewStateMachine compiles rules and returns a StateMachine ready to
// process events. log receives the spurious-event warnings: unpressed
// releases, unpressed repeats, and rule ambiguity.
func NewStateMachine(rules []mapping.Rule, log *logrus.Logger) *StateMachine {
	return &StateMachine{
		keyMap:      Compile(rules),
		log:         log,
		inputState:  make(map[mapping.KeyCode][]mapping.KeyCode),
		outputState: make(map[mapping.KeyCode][]mapping.KeyCode),
	}
}

// Send dispatches one physical key event and returns the ordered batch
// of virtual key transitions it produces, plus whether the caller must
// terminate the batch with a SYN_REPORT. A batch that processed a Press
// or Release always commits with a sync, even when it produced zero key
// events (e.g. a rule mapping its trigger to an empty dst list); a
// release suppressed because the key is still held virtually by another
// physical key produces no output and no sync at all.
func (s *StateMachine) Send(code mapping.KeyCode, event EventType) (events []OutputEvent, sync bool) {
	switch event {
	case Press:
		return s.press(code), true
	case Release:
		return s.release(code)
	case Repeat:
		return s.repeat(code)
	default:
		return nil, false
	}
}

// held reports whether physical key k currently has an entry in
// inputState.
func (s *StateMachine) held(k mapping.KeyCode) bool {
	var _, ok = s.inputState[k]

	return ok
}

// press computes the candidate remap table for the pressed key k,
// resolves it against which src keys are actually held, and applies the
// resulting release/press batch.
func (s *StateMachine) press(k mapping.KeyCode) []OutputEvent {
	var entry, ok = s.keyMap[k]

	if !ok {
		// k carries no KeyEntry at all: wholly unmapped, passes through
		// as itself.
		var release []mapping.KeyCode

		if s.held(k) {
			release = []mapping.KeyCode{k}
		}

		return s.apply(release, []srcDst{{k, []mapping.KeyCode{k}}})
	}

	updateGuards(entry, true)

	var m = s.resolveTable(entry, k)

	var (
		release  []mapping.KeyCode
		pressed  []srcDst
		src      mapping.KeyCode
		dst      []mapping.KeyCode
		selfDst  []mapping.KeyCode
		selfSeen bool
	)

	for src, dst = range m {
		if src == k {
			continue
		}

		if !s.held(src) {
			continue
		}

		release = append(release, src)
		pressed = append(pressed, srcDst{src, dst})
	}

	sort.Slice(release, func(i, j int) bool { return release[i] < release[j] })
	sort.Slice(pressed, func(i, j int) bool { return pressed[i].src < pressed[j].src })

	selfDst, selfSeen = m[k]

	if selfSeen {
		if s.held(k) {
			release = append(release, k)
		}

		pressed = append(pressed, srcDst{k, selfDst})
	} else {
		if s.held(k) {
			release = append(release, k)
		}

		pressed = append(pressed, srcDst{k, []mapping.KeyCode{k}})
	}

	return s.apply(release, pressed)
}

// srcDst is one resolved press: src is the physical key, dst the
// virtual keys it now drives.
type srcDst struct {
	src mapping.KeyCode
	dst []mapping.KeyCode
}

// resolveTable merges the mappings of every rule triggered by k whose
// guard is currently eligible into a single src -> dst table. Ties are
// resolved first-wins by ascending CompiledRule.Index, so the rule
// earliest in the configuration file wins; a later rule's attempt to
// overwrite an existing src is logged as an ambiguity and ignored.
func (s *StateMachine) resolveTable(entry *KeyEntry, k mapping.KeyCode) map[mapping.KeyCode][]mapping.KeyCode {
	var (
		m       = make(map[mapping.KeyCode][]mapping.KeyCode)
		claimed = make(map[mapping.KeyCode]int)
		order   = make([]*CompiledRule, 0, len(entry.Trigger))
		rule    *CompiledRule
		mp      mapping.Mapping
		idx     int
		dup     bool
	)

	for _, rule = range entry.Trigger {
		if rule.Guard.Eligible() {
			order = append(order, rule)
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Index < order[j].Index })

	for _, rule = range order {
		for _, mp = range rule.Mappings {
			idx, dup = claimed[mp.Src]
			if dup {
				if idx != rule.Index {
					s.log.WithFields(logrus.Fields{
						"trigger": k,
						"src":     mp.Src,
					}).Warn("ambiguous remap: src already claimed by an earlier rule, ignoring")
				}

				continue
			}

			claimed[mp.Src] = rule.Index
			m[mp.Src] = mp.Dst
		}
	}

	return m
}

// release emits the release batch for k if k is physically held,
// suppresses the release if k is only held virtually on behalf of
// another physical key, and passes a wholly unknown release through
// with a warning.
func (s *StateMachine) release(k mapping.KeyCode) ([]OutputEvent, bool) {
	var entry, ok = s.keyMap[k]
	if ok {
		updateGuards(entry, false)
	}

	if s.held(k) {
		return s.apply([]mapping.KeyCode{k}, nil), true
	}

	var _, virtual = s.outputState[k]
	if virtual {
		// k is currently held virtually on behalf of another physical
		// key; the release is maintained by the owner, not k.
		return nil, false
	}

	s.log.WithField("code", k).Warn("release of a key that was never pressed")

	return []OutputEvent{{Code: k, Value: 0}}, true
}

// repeat re-emits a Repeat for every virtual key k currently drives; a
// repeat of a key that is not held passes through with a warning and no
// sync.
func (s *StateMachine) repeat(k mapping.KeyCode) ([]OutputEvent, bool) {
	var dst, ok = s.inputState[k]
	if !ok {
		s.log.WithField("code", k).Warn("repeat of a key that was never pressed")

		return []OutputEvent{{Code: k, Value: 2}}, false
	}

	var (
		out = make([]OutputEvent, 0, len(dst))
		v   mapping.KeyCode
	)

	for _, v = range dst {
		out = append(out, OutputEvent{Code: v, Value: 2})
	}

	return out, true
}

// updateGuards applies the guard-bit transition for a single physical
// key edge: on press, cond literals become satisfied and except
// literals become violated; on release, the reverse.
func updateGuards(entry *KeyEntry, pressed bool) {
	var ref GuardRef

	for _, ref = range entry.CondSet {
		ref.Guard.Set(ref.Bit, !pressed)
	}

	for _, ref = range entry.CondUnset {
		ref.Guard.Set(ref.Bit, pressed)
	}
}

// apply releases every src in release, then presses every (src, dst)
// in press, updating inputState and outputState in lockstep, then
// emits the net released/pressed virtual keys as Release events
// followed by Press events. Press order follows press's order
// (non-triggering keys before the triggering key itself, so the key
// the user struck is the last to engage); release order is
// deterministic by KeyCode.
//
// A virtual key that both empties and refills within the same batch
// must not visibly toggle, but only when a *different* src took over
// holding it (a remap handoff, e.g. two physical keys sharing one dst
// trading ownership). When the same src vacates and refills its own
// dst, the toggle is the deliberate signal of a double-press and must
// surface as Release followed by Press.
func (s *StateMachine) apply(release []mapping.KeyCode, press []srcDst) []OutputEvent {
	var (
		released   = make(map[mapping.KeyCode]mapping.KeyCode)
		pressedBy  = make(map[mapping.KeyCode][]mapping.KeyCode)
		pressOrder []mapping.KeyCode
		src        mapping.KeyCode
		v          mapping.KeyCode
		sd         srcDst
	)

	for _, src = range release {
		var vs, ok = s.inputState[src]
		if !ok {
			continue
		}

		delete(s.inputState, src)

		for _, v = range vs {
			s.removeOwner(v, src)
			if len(s.outputState[v]) == 0 {
				delete(s.outputState, v)
				released[v] = src
			}
		}
	}

	for _, sd = range press {
		s.inputState[sd.src] = sd.dst

		for _, v = range sd.dst {
			var wasEmpty = len(s.outputState[v]) == 0

			s.outputState[v] = append(s.outputState[v], sd.src)

			if wasEmpty {
				var _, dup = pressedBy[v]
				if !dup {
					pressOrder = append(pressOrder, v)
				}

				pressedBy[v] = append(pressedBy[v], sd.src)
			}
		}
	}

	var sameSrc = func(v mapping.KeyCode) bool {
		var (
			releasedBy = released[v]
			owner      mapping.KeyCode
		)

		for _, owner = range pressedBy[v] {
			if owner == releasedBy {
				return true
			}
		}

		return false
	}

	var out = make([]OutputEvent, 0, len(released)+len(pressOrder))

	var releaseOut []mapping.KeyCode

	for v = range released {
		var _, both = pressedBy[v]
		if both && !sameSrc(v) {
			continue
		}

		releaseOut = append(releaseOut, v)
	}

	sort.Slice(releaseOut, func(i, j int) bool { return releaseOut[i] < releaseOut[j] })

	for _, v = range releaseOut {
		out = append(out, OutputEvent{Code: v, Value: 0})
	}

	for _, v = range pressOrder {
		var _, both = released[v]
		if both && !sameSrc(v) {
			continue
		}

		out = append(out, OutputEvent{Code: v, Value: 1})
	}

	return out
}

// removeOwner deletes owner from v's owner list in outputState.
func (s *StateMachine) removeOwner(v, owner mapping.KeyCode) {
	var (
		owners = s.outputState[v]
		i      int
		o      mapping.KeyCode
	)

	for i, o = range owners {
		if o == owner {
			s.outputState[v] = append(owners[:i], owners[i+1:]...)

			return
		}
	}
}
