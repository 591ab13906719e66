//go:build linux

package remap

import (
	"reflect"
	"testing"

	"github.com/andrieee44/evremap/mapping"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	var log = logrus.New()

	log.SetLevel(logrus.PanicLevel)

	return log
}

func key(t *testing.T, name string) mapping.KeyCode {
	t.Helper()

	var (
		code mapping.KeyCode
		err  error
	)

	code, err = mapping.ParseKeyCode(name)
	if err != nil {
		t.Fatalf("ParseKeyCode(%q): %v", name, err)
	}

	return code
}

// send wraps StateMachine.Send and appends a SYN_REPORT marker
// (encoded here as a sentinel Value so tests can assert on it without
// pulling in linuxinput's EV_SYN/SYN_REPORT constants) whenever the
// machine reports the batch commits.
const synValue = -1

func send(sm *StateMachine, code mapping.KeyCode, event EventType) []OutputEvent {
	var out, sync = sm.Send(code, event)
	if sync {
		out = append(out, OutputEvent{Code: code, Value: synValue})
	}

	return out
}

func TestStateMachinePassthroughWithNoRules(t *testing.T) {
	var (
		sm = NewStateMachine(nil, testLogger())
		a  = key(t, "KEY_A")
	)

	assertEvents(t, send(sm, a, Press), []OutputEvent{{Code: a, Value: 1}, {Code: a, Value: synValue}})
	assertEvents(t, send(sm, a, Release), []OutputEvent{{Code: a, Value: 0}, {Code: a, Value: synValue}})
}

func TestStateMachineDoublePressRecovery(t *testing.T) {
	var (
		sm = NewStateMachine(nil, testLogger())
		a  = key(t, "KEY_A")
	)

	assertEvents(t, send(sm, a, Press), []OutputEvent{{Code: a, Value: 1}, {Code: a, Value: synValue}})
	assertEvents(t, send(sm, a, Press), []OutputEvent{{Code: a, Value: 0}, {Code: a, Value: 1}, {Code: a, Value: synValue}})
}

func TestStateMachineSpuriousRelease(t *testing.T) {
	var (
		sm = NewStateMachine(nil, testLogger())
		a  = key(t, "KEY_A")
	)

	var out, sync = sm.Send(a, Release)
	if !sync {
		t.Fatalf("spurious release must still sync")
	}

	assertEvents(t, out, []OutputEvent{{Code: a, Value: 0}})
}

func TestStateMachineSpuriousRepeatPassesThroughWithoutSync(t *testing.T) {
	var (
		sm = NewStateMachine(nil, testLogger())
		a  = key(t, "KEY_A")
	)

	var out, sync = sm.Send(a, Repeat)
	if sync {
		t.Fatalf("spurious repeat must not sync")
	}

	assertEvents(t, out, []OutputEvent{{Code: a, Value: 2}})
}

func TestStateMachineGuardedRemap(t *testing.T) {
	var (
		shift = key(t, "KEY_LEFTSHIFT")
		a     = key(t, "KEY_A")
		b     = key(t, "KEY_B")
	)

	var sm = NewStateMachine([]mapping.Rule{
		{
			Cond:     []mapping.KeyCode{shift},
			When:     []mapping.KeyCode{a},
			Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{b}}},
			Index:    0,
		},
	}, testLogger())

	assertEvents(t, send(sm, shift, Press), []OutputEvent{{Code: shift, Value: 1}, {Code: shift, Value: synValue}})
	assertEvents(t, send(sm, a, Press), []OutputEvent{{Code: b, Value: 1}, {Code: a, Value: synValue}})
	assertEvents(t, send(sm, a, Release), []OutputEvent{{Code: b, Value: 0}, {Code: a, Value: synValue}})
	assertEvents(t, send(sm, shift, Release), []OutputEvent{{Code: shift, Value: 0}, {Code: shift, Value: synValue}})
}

// TestStateMachineExceptGuardBlocksRemap covers the case where a guard's
// except literal is held: the rule must not fire and the src key passes
// through unchanged.
func TestStateMachineExceptGuardBlocksRemap(t *testing.T) {
	var (
		shift = key(t, "KEY_LEFTSHIFT")
		ctrl  = key(t, "KEY_LEFTCTRL")
		a     = key(t, "KEY_A")
		b     = key(t, "KEY_B")
	)

	var sm = NewStateMachine([]mapping.Rule{
		{
			Cond:     []mapping.KeyCode{shift},
			Except:   []mapping.KeyCode{ctrl},
			When:     []mapping.KeyCode{a},
			Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{b}}},
			Index:    0,
		},
	}, testLogger())

	send(sm, shift, Press)
	send(sm, ctrl, Press)

	assertEvents(t, send(sm, a, Press), []OutputEvent{{Code: a, Value: 1}, {Code: a, Value: synValue}})

	send(sm, a, Release)
	send(sm, ctrl, Release)

	// With ctrl released the except literal is satisfied again and the
	// guard becomes eligible once more.
	assertEvents(t, send(sm, a, Press), []OutputEvent{{Code: b, Value: 1}, {Code: a, Value: synValue}})

	send(sm, a, Release)
	send(sm, shift, Release)
}

// TestStateMachineModifierReinterpretation exercises the classic
// meta-as-ctrl layout: a rule triggered by an unrelated `when` key (C)
// re-maps a different, currently-held src key (LEFTMETA) to LEFTCTRL --
// the when set and the mapping's src need not coincide.
func TestStateMachineModifierReinterpretation(t *testing.T) {
	var (
		meta  = key(t, "KEY_LEFTMETA")
		ctrl  = key(t, "KEY_LEFTCTRL")
		c     = key(t, "KEY_C")
		v     = key(t, "KEY_V")
		tab   = key(t, "KEY_TAB")
		grave = key(t, "KEY_GRAVE")
	)

	var sm = NewStateMachine([]mapping.Rule{
		{
			When:     []mapping.KeyCode{meta},
			Mappings: []mapping.Mapping{{Src: meta, Dst: nil}},
			Index:    0,
		},
		{
			Cond:     []mapping.KeyCode{meta},
			When:     []mapping.KeyCode{c, v},
			Mappings: []mapping.Mapping{{Src: meta, Dst: []mapping.KeyCode{ctrl}}},
			Index:    1,
		},
		{
			Cond:     []mapping.KeyCode{meta},
			When:     []mapping.KeyCode{tab, grave},
			Mappings: []mapping.Mapping{{Src: meta, Dst: []mapping.KeyCode{meta}}},
			Index:    2,
		},
	}, testLogger())

	assertEvents(t, send(sm, meta, Press), []OutputEvent{{Code: meta, Value: synValue}})
	assertEvents(t, send(sm, c, Press), []OutputEvent{{Code: ctrl, Value: 1}, {Code: c, Value: 1}, {Code: c, Value: synValue}})
	assertEvents(t, send(sm, c, Release), []OutputEvent{{Code: c, Value: 0}, {Code: c, Value: synValue}})
	assertEvents(t, send(sm, meta, Release), []OutputEvent{{Code: ctrl, Value: 0}, {Code: meta, Value: synValue}})
}

// TestStateMachineTieBreaksOnLowestIndex covers ambiguity between two
// simultaneously eligible rules for the same src: the rule earliest in
// the configuration file wins.
func TestStateMachineTieBreaksOnLowestIndex(t *testing.T) {
	var (
		a = key(t, "KEY_A")
		b = key(t, "KEY_B")
		c = key(t, "KEY_C")
	)

	var sm = NewStateMachine([]mapping.Rule{
		{When: []mapping.KeyCode{a}, Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{c}}}, Index: 1},
		{When: []mapping.KeyCode{a}, Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{b}}}, Index: 0},
	}, testLogger())

	assertEvents(t, send(sm, a, Press), []OutputEvent{{Code: b, Value: 1}, {Code: a, Value: synValue}})
}

// TestStateMachineSharedDstRefcounts covers two physical keys mapped to
// the same virtual key: the virtual key must not be released until
// both physical keys have been released.
func TestStateMachineSharedDstRefcounts(t *testing.T) {
	var (
		a = key(t, "KEY_A")
		s = key(t, "KEY_S")
		b = key(t, "KEY_B")
	)

	var sm = NewStateMachine([]mapping.Rule{
		{When: []mapping.KeyCode{a}, Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{b}}}, Index: 0},
		{When: []mapping.KeyCode{s}, Mappings: []mapping.Mapping{{Src: s, Dst: []mapping.KeyCode{b}}}, Index: 1},
	}, testLogger())

	assertEvents(t, send(sm, a, Press), []OutputEvent{{Code: b, Value: 1}, {Code: a, Value: synValue}})
	assertEvents(t, send(sm, s, Press), []OutputEvent{{Code: s, Value: synValue}})
	assertEvents(t, send(sm, a, Release), []OutputEvent{{Code: a, Value: synValue}})
	assertEvents(t, send(sm, s, Release), []OutputEvent{{Code: b, Value: 0}, {Code: s, Value: synValue}})
}

// TestStateMachineReleaseOfVirtuallyHeldKeySuppressed covers a physical
// release of a key the machine never saw pressed but which another
// physical key is currently holding virtually: the release must be
// swallowed entirely, with no output and no sync, since the owner still
// maintains the held state.
func TestStateMachineReleaseOfVirtuallyHeldKeySuppressed(t *testing.T) {
	var (
		a = key(t, "KEY_A")
		b = key(t, "KEY_B")
	)

	var sm = NewStateMachine([]mapping.Rule{
		{When: []mapping.KeyCode{a}, Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{b}}}, Index: 0},
	}, testLogger())

	send(sm, a, Press)

	var out, sync = sm.Send(b, Release)
	if sync {
		t.Fatalf("release of a virtually held key must not sync")
	}

	if len(out) != 0 {
		t.Fatalf("release of a virtually held key must produce no output, got %#v", out)
	}

	// The owner's release still frees the virtual key.
	assertEvents(t, send(sm, a, Release), []OutputEvent{{Code: b, Value: 0}, {Code: a, Value: synValue}})
}

// TestStateMachineRoundTripRestoresEmptyState drives a guarded press and
// release pair and checks the bimap drains back to empty and the guard
// returns to its initial unsatisfied count.
func TestStateMachineRoundTripRestoresEmptyState(t *testing.T) {
	var (
		shift = key(t, "KEY_LEFTSHIFT")
		a     = key(t, "KEY_A")
		b     = key(t, "KEY_B")
	)

	var sm = NewStateMachine([]mapping.Rule{
		{
			Cond:     []mapping.KeyCode{shift},
			When:     []mapping.KeyCode{a},
			Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{b}}},
			Index:    0,
		},
	}, testLogger())

	send(sm, shift, Press)
	send(sm, a, Press)
	send(sm, a, Release)
	send(sm, shift, Release)

	if len(sm.inputState) != 0 || len(sm.outputState) != 0 {
		t.Fatalf("state not drained: input=%v output=%v", sm.inputState, sm.outputState)
	}

	var entry = sm.keyMap[shift]

	if len(entry.CondSet) != 1 || entry.CondSet[0].Guard.Unsatisfied != 1 {
		t.Fatalf("guard not restored to initial state: %+v", entry.CondSet)
	}
}

// TestStateMachineRepeatFollowsRemap checks a repeat of a physically
// held key re-fires as its mapped virtual keys, not as itself.
func TestStateMachineRepeatFollowsRemap(t *testing.T) {
	var (
		a = key(t, "KEY_A")
		b = key(t, "KEY_B")
	)

	var sm = NewStateMachine([]mapping.Rule{
		{When: []mapping.KeyCode{a}, Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{b}}}, Index: 0},
	}, testLogger())

	send(sm, a, Press)

	assertEvents(t, send(sm, a, Repeat), []OutputEvent{{Code: b, Value: 2}, {Code: a, Value: synValue}})
}

func TestGuardStateRoundTrip(t *testing.T) {
	var g = newGuardState(1, 2)

	if g.Eligible() {
		t.Fatalf("guard eligible before cond literal pressed")
	}

	g.Set(0, false)
	if !g.Eligible() {
		t.Fatalf("guard not eligible after cond literal pressed")
	}

	g.Set(0, true)
	if g.Unsatisfied != 1 {
		t.Fatalf("Unsatisfied = %d, want 1 after releasing the cond literal", g.Unsatisfied)
	}
}

func assertEvents(t *testing.T, got, want []OutputEvent) {
	t.Helper()

	if len(got) == 0 && len(want) == 0 {
		return
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}
