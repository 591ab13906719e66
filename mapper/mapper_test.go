//go:build linux

package mapper

import (
	"reflect"
	"sort"
	"testing"

	"github.com/andrieee44/evremap/internal/linuxinput"
	"github.com/andrieee44/evremap/mapping"
)

func TestDstKeyCodesDedupesAcrossRules(t *testing.T) {
	var (
		a = mapping.KeyCode(30)
		b = mapping.KeyCode(48)
		c = mapping.KeyCode(46)
	)

	var cfg = mapping.MappingConfig{
		Rules: []mapping.Rule{
			{Mappings: []mapping.Mapping{{Src: a, Dst: []mapping.KeyCode{b, c}}}},
			{Mappings: []mapping.Mapping{{Src: b, Dst: []mapping.KeyCode{c}}}},
		},
	}

	var got = dstKeyCodes(cfg)

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	var want = []linuxinput.EventCode{linuxinput.EventCode(c), linuxinput.EventCode(b)}

	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("dstKeyCodes = %v, want %v", got, want)
	}
}

func TestKeyEventType(t *testing.T) {
	type testCase struct {
		value int32
		ok    bool
	}

	var (
		cases []testCase
		c     testCase
		ok    bool
	)

	cases = []testCase{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{-1, false},
	}

	for _, c = range cases {
		_, ok = keyEventType(c.value)
		if ok != c.ok {
			t.Errorf("keyEventType(%d) ok = %v, want %v", c.value, ok, c.ok)
		}
	}
}
