//go:build linux

// Package mapping decodes a remap configuration document and exposes
// its data model: KeyCode, Rule, and the MappingConfig that groups a
// device selector with its rules.
package mapping

import (
	"fmt"
	"os"
	"sort"

	"github.com/andrieee44/evremap/internal/linuxinput"
	"gopkg.in/yaml.v3"
)

// KeyCode is an opaque evdev EV_KEY code, named in configuration by its
// kernel KEY_xxx identifier (e.g. "KEY_LEFTMETA").
type KeyCode linuxinput.EventCode

// String renders the KeyCode back to its KEY_xxx name, or a numeric
// fallback if the code has no known name. For a code with more than one
// name (e.g. KEY_HANGEUL and KEY_HANGUEL), which of them is returned is
// not fixed.
func (k KeyCode) String() string {
	var (
		name string
		ok   bool
	)

	name, ok = nameByKeyCode[k]
	if !ok {
		return fmt.Sprintf("KEY_%d", uint16(k))
	}

	return name
}

// ParseKeyCode resolves a KEY_xxx name into its KeyCode. It returns
// ConfigError if the name is not a recognized evdev key.
func ParseKeyCode(name string) (KeyCode, error) {
	var (
		code linuxinput.EventCode
		ok   bool
	)

	code, ok = keyCodeByName[name]
	if !ok {
		return 0, &ConfigError{Reason: fmt.Sprintf("unknown key %q", name)}
	}

	return KeyCode(code), nil
}

var nameByKeyCode = func() map[KeyCode]string {
	var (
		m    map[KeyCode]string
		name string
		code linuxinput.EventCode
	)

	m = make(map[KeyCode]string, len(keyCodeByName))
	for name, code = range keyCodeByName {
		m[KeyCode(code)] = name
	}

	return m
}()

// UnmarshalYAML implements yaml.Unmarshaler, validating that a scalar
// key name is a known KEY_xxx identifier as it is decoded.
func (k *KeyCode) UnmarshalYAML(node *yaml.Node) error {
	var (
		name string
		code KeyCode
		err  error
	)

	err = node.Decode(&name)
	if err != nil {
		return fmt.Errorf("mapping.KeyCode.UnmarshalYAML: %w", err)
	}

	code, err = ParseKeyCode(name)
	if err != nil {
		return err
	}

	*k = code

	return nil
}

// Rule is a single remap entry decoded from configuration.
//
//   - Cond: keys that must all be currently held for the rule to be
//     eligible.
//   - Except: keys that must all currently not be held.
//   - When: keys whose press may trigger the rule.
//   - Mappings: src -> [dst...] substitutions applied when the rule
//     fires.
type Rule struct {
	Cond     []KeyCode
	Except   []KeyCode
	When     []KeyCode
	Mappings []Mapping

	// Index is the rule's position in the configuration file's remap
	// list, used to break ambiguity ties deterministically.
	Index int
}

// Mapping is a single src -> dst substitution within a Rule. It is a
// tagged struct rather than an interface so that future mapping kinds
// (e.g. tap-hold) can be added as new tags without a vtable-style
// abstraction.
type Mapping struct {
	Src KeyCode
	Dst []KeyCode
}

// MappingConfig is the top-level decoded configuration: which device to
// remap and the ordered list of remap rules that apply to it.
type MappingConfig struct {
	DeviceName string
	Phys       string
	Rules      []Rule
}

// configFile mirrors the on-disk YAML document shape.
type configFile struct {
	DeviceName string        `yaml:"device_name"`
	Phys       string        `yaml:"phys"`
	Remap      []remapConfig `yaml:"remap"`
}

type remapConfig struct {
	Cond     []KeyCode             `yaml:"cond"`
	Except   []KeyCode             `yaml:"except"`
	When     []KeyCode             `yaml:"when"`
	Mappings map[KeyCode][]KeyCode `yaml:"mappings"`
}

// ConfigError reports a malformed or invalid configuration document:
// an unknown key name, or a structurally malformed YAML file. It is
// fatal at startup.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config error in %s: %s", e.Path, e.Reason)
	}

	return fmt.Sprintf("config error: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads and decodes a remap configuration document from path.
func Load(path string) (MappingConfig, error) {
	var (
		raw  []byte
		file configFile
		cfg  MappingConfig
		i    int
		r    remapConfig
		rule Rule
		src  KeyCode
		dst  []KeyCode
		err  error
	)

	raw, err = os.ReadFile(path)
	if err != nil {
		return MappingConfig{}, &ConfigError{
			Path:   path,
			Reason: "reading configuration file",
			Err:    err,
		}
	}

	err = yaml.Unmarshal(raw, &file)
	if err != nil {
		return MappingConfig{}, &ConfigError{
			Path:   path,
			Reason: "parsing YAML",
			Err:    err,
		}
	}

	cfg = MappingConfig{
		DeviceName: file.DeviceName,
		Phys:       file.Phys,
		Rules:      make([]Rule, 0, len(file.Remap)),
	}

	for i, r = range file.Remap {
		rule = Rule{
			Cond:     r.Cond,
			Except:   r.Except,
			When:     r.When,
			Mappings: make([]Mapping, 0, len(r.Mappings)),
			Index:    i,
		}

		for src, dst = range r.Mappings {
			rule.Mappings = append(rule.Mappings, Mapping{Src: src, Dst: dst})
		}

		sort.Slice(rule.Mappings, func(i, j int) bool {
			return rule.Mappings[i].Src < rule.Mappings[j].Src
		})

		cfg.Rules = append(cfg.Rules, rule)
	}

	return cfg, nil
}
