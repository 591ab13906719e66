//go:build linux

package mapping

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseKeyCodeRoundTrip(t *testing.T) {
	var (
		code KeyCode
		err  error
	)

	code, err = ParseKeyCode("KEY_LEFTSHIFT")
	if err != nil {
		t.Fatalf("ParseKeyCode: %v", err)
	}

	if code.String() != "KEY_LEFTSHIFT" {
		t.Fatalf("String() = %q, want KEY_LEFTSHIFT", code.String())
	}
}

func TestParseKeyCodeUnknown(t *testing.T) {
	var (
		err     error
		cfgErr  *ConfigError
		asCfgOk bool
	)

	_, err = ParseKeyCode("KEY_NOT_A_REAL_KEY")
	if err == nil {
		t.Fatalf("ParseKeyCode: want error for unknown key name")
	}

	asCfgOk = errors.As(err, &cfgErr)
	if !asCfgOk {
		t.Fatalf("ParseKeyCode error is not a *ConfigError: %v", err)
	}
}

func TestKeyCodeStringUnknownFallsBackToNumeric(t *testing.T) {
	var k = KeyCode(65535)

	if k.String() != "KEY_65535" {
		t.Fatalf("String() = %q, want KEY_65535", k.String())
	}
}

func TestLoadValidConfig(t *testing.T) {
	var (
		dir  string
		path string
		cfg  MappingConfig
		err  error
	)

	dir = t.TempDir()
	path = filepath.Join(dir, "remap.yaml")

	err = os.WriteFile(path, []byte(`
device_name: "Some Keyboard"
phys: "usb-0000:00:14.0-1/input0"
remap:
  - cond: ["KEY_LEFTSHIFT"]
    except: ["KEY_LEFTCTRL"]
    mappings:
      KEY_A: ["KEY_B"]
  - when: ["KEY_CAPSLOCK"]
    mappings:
      KEY_CAPSLOCK: ["KEY_LEFTCTRL"]
`), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DeviceName != "Some Keyboard" {
		t.Fatalf("DeviceName = %q, want %q", cfg.DeviceName, "Some Keyboard")
	}

	if cfg.Phys != "usb-0000:00:14.0-1/input0" {
		t.Fatalf("Phys = %q, want usb-0000:00:14.0-1/input0", cfg.Phys)
	}

	if len(cfg.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(cfg.Rules))
	}

	var first = cfg.Rules[0]

	if first.Index != 0 {
		t.Fatalf("Rules[0].Index = %d, want 0", first.Index)
	}

	if len(first.Cond) != 1 || first.Cond[0].String() != "KEY_LEFTSHIFT" {
		t.Fatalf("Rules[0].Cond = %v, want [KEY_LEFTSHIFT]", first.Cond)
	}

	if len(first.Except) != 1 || first.Except[0].String() != "KEY_LEFTCTRL" {
		t.Fatalf("Rules[0].Except = %v, want [KEY_LEFTCTRL]", first.Except)
	}

	if len(first.Mappings) != 1 {
		t.Fatalf("len(Rules[0].Mappings) = %d, want 1", len(first.Mappings))
	}

	if first.Mappings[0].Src.String() != "KEY_A" {
		t.Fatalf("Rules[0].Mappings[0].Src = %v, want KEY_A", first.Mappings[0].Src)
	}

	var second = cfg.Rules[1]

	if second.Index != 1 {
		t.Fatalf("Rules[1].Index = %d, want 1", second.Index)
	}

	if len(second.When) != 1 || second.When[0].String() != "KEY_CAPSLOCK" {
		t.Fatalf("Rules[1].When = %v, want [KEY_CAPSLOCK]", second.When)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var (
		err    error
		cfgErr *ConfigError
	)

	_, err = Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatalf("Load: want error for missing file")
	}

	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load error is not a *ConfigError: %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	var (
		dir  string
		path string
		err  error
	)

	dir = t.TempDir()
	path = filepath.Join(dir, "remap.yaml")

	err = os.WriteFile(path, []byte("device_name: [this is not valid\n"), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Fatalf("Load: want error for malformed YAML")
	}
}

func TestLoadUnknownKeyName(t *testing.T) {
	var (
		dir  string
		path string
		err  error
	)

	dir = t.TempDir()
	path = filepath.Join(dir, "remap.yaml")

	err = os.WriteFile(path, []byte(`
device_name: "Some Keyboard"
remap:
  - mappings:
      KEY_A: ["KEY_NOT_A_REAL_KEY"]
`), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Fatalf("Load: want error for unknown key name")
	}
}

func TestLoadMappingsSortedBySrc(t *testing.T) {
	var (
		dir  string
		path string
		cfg  MappingConfig
		err  error
	)

	dir = t.TempDir()
	path = filepath.Join(dir, "remap.yaml")

	err = os.WriteFile(path, []byte(`
device_name: "Some Keyboard"
remap:
  - mappings:
      KEY_B: ["KEY_Y"]
      KEY_A: ["KEY_X"]
`), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var mappings = cfg.Rules[0].Mappings

	if len(mappings) != 2 {
		t.Fatalf("len(Mappings) = %d, want 2", len(mappings))
	}

	if mappings[0].Src >= mappings[1].Src {
		t.Fatalf("Mappings not sorted by Src: %v", mappings)
	}
}
