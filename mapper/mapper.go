//go:build linux

package mapper

import (
	"fmt"

	"github.com/andrieee44/evremap/internal/linuxinput"
	"github.com/andrieee44/evremap/internal/uinputdev"
	"github.com/andrieee44/evremap/mapping"
	"github.com/andrieee44/evremap/remap"
	"github.com/sirupsen/logrus"
)

// SyncLossError is returned by Run when the kernel reports a
// SYN_DROPPED event: the input buffer overflowed and some physical key
// transitions were lost. This is fatal -- there is no way to know which
// keys are still logically held, so the mapper cannot safely keep
// driving the virtual device.
type SyncLossError struct {
	Device string
}

func (e *SyncLossError) Error() string {
	return fmt.Sprintf("input event buffer overflowed reading %s (SYN_DROPPED)", e.Device)
}

// InputMapper binds one physical device to one virtual device through a
// compiled remap.StateMachine.
type InputMapper struct {
	input  *linuxinput.Device
	output *uinputdev.Device
	sm     *remap.StateMachine
	log    *logrus.Logger
	path   string
}

// Create opens the device at path, brings up a virtual keyboard that
// supports every code cfg's rules can ever produce, grabs exclusive
// access to the physical device, and compiles cfg's rules into a
// StateMachine.
func Create(path string, cfg mapping.MappingConfig, log *logrus.Logger) (*InputMapper, error) {
	var (
		input  *linuxinput.Device
		output *uinputdev.Device
		err    error
	)

	input, err = linuxinput.NewDevice(path)
	if err != nil {
		return nil, err
	}

	var keys []linuxinput.EventCode

	keys, err = supportedKeyCodes(input, cfg)
	if err != nil {
		input.Close()

		return nil, err
	}

	output, err = uinputdev.Create(fmt.Sprintf("evremap virtual input for %s", path), keys)
	if err != nil {
		input.Close()

		return nil, err
	}

	err = input.Grab()
	if err != nil {
		input.Close()
		output.Close()

		return nil, err
	}

	return &InputMapper{
		input:  input,
		output: output,
		sm:     remap.NewStateMachine(cfg.Rules, log),
		log:    log,
		path:   path,
	}, nil
}

// supportedKeyCodes unions every key code the physical device can
// produce with every code any rule's Mappings can emit, so the virtual
// device advertises support for both passthrough keys and remapped
// ones before it is created -- a code the kernel was never told about
// is silently dropped when written.
func supportedKeyCodes(input *linuxinput.Device, cfg mapping.MappingConfig) ([]linuxinput.EventCode, error) {
	var (
		codes []linuxinput.EventCode
		seen  map[linuxinput.EventCode]struct{}
		code  linuxinput.EventCode
		out   []linuxinput.EventCode
		ok    bool
		err   error
	)

	codes, err = input.Codes(linuxinput.EV_KEY)
	if err != nil {
		return nil, err
	}

	seen = make(map[linuxinput.EventCode]struct{}, len(codes))
	out = make([]linuxinput.EventCode, 0, len(codes))

	for _, code = range codes {
		seen[code] = struct{}{}
		out = append(out, code)
	}

	for _, code = range dstKeyCodes(cfg) {
		_, ok = seen[code]
		if ok {
			continue
		}

		out = append(out, code)
	}

	return out, nil
}

// dstKeyCodes collects every key code any rule's Mappings can emit.
func dstKeyCodes(cfg mapping.MappingConfig) []linuxinput.EventCode {
	var (
		seen map[mapping.KeyCode]struct{}
		out  []linuxinput.EventCode
		r    mapping.Rule
		m    mapping.Mapping
		k    mapping.KeyCode
		ok   bool
	)

	seen = make(map[mapping.KeyCode]struct{})

	for _, r = range cfg.Rules {
		for _, m = range r.Mappings {
			for _, k = range m.Dst {
				_, ok = seen[k]
				if ok {
					continue
				}

				seen[k] = struct{}{}
				out = append(out, linuxinput.EventCode(k))
			}
		}
	}

	return out
}

// Run blocks reading physical key events, replaying each through the
// StateMachine and writing the resulting batch to the virtual device,
// until the physical device errors, reports SYN_DROPPED, or is closed.
func (m *InputMapper) Run() error {
	var (
		event linuxinput.Event
		err   error
	)

	m.log.Info("entering read loop")

	for {
		event, err = m.input.ReadEvent()
		if err != nil {
			return err
		}

		switch event.Type {
		case linuxinput.EV_SYN:
			if event.Code == linuxinput.SYN_DROPPED {
				return &SyncLossError{Device: m.path}
			}

			err = m.output.WriteEvent(event.Type, event.Code, event.Value)
		case linuxinput.EV_KEY:
			err = m.dispatch(event)
		default:
			// Non-key events pass through unchanged.
			err = m.output.WriteEvent(event.Type, event.Code, event.Value)
		}

		if err != nil {
			return err
		}
	}
}

// dispatch replays a single EV_KEY event through the StateMachine and
// writes the resulting batch, terminated by a single SYN_REPORT when
// the StateMachine says the batch commits. A key event with a value
// outside {0,1,2} is passed through unchanged and logged.
func (m *InputMapper) dispatch(event linuxinput.Event) error {
	var (
		et   remap.EventType
		ok   bool
		out  []remap.OutputEvent
		sync bool
		oe   remap.OutputEvent
		err  error
	)

	et, ok = keyEventType(event.Value)
	if !ok {
		m.log.WithField("value", event.Value).Warn("ignoring key event with unrecognized value")

		return m.write(linuxinput.EventCode(event.Code), event.Value, false)
	}

	out, sync = m.sm.Send(mapping.KeyCode(event.Code), et)

	for _, oe = range out {
		err = m.output.WriteEvent(linuxinput.EV_KEY, linuxinput.EventCode(oe.Code), oe.Value)
		if err != nil {
			return err
		}
	}

	if !sync {
		return nil
	}

	return m.output.Sync()
}

// write forwards a single raw key event to the virtual device, syncing
// afterward if sync is true.
func (m *InputMapper) write(code linuxinput.EventCode, value int32, sync bool) error {
	var err = m.output.WriteEvent(linuxinput.EV_KEY, code, value)
	if err != nil {
		return err
	}

	if !sync {
		return nil
	}

	return m.output.Sync()
}

// keyEventType decodes the kernel's raw EV_KEY Value field
// (0=Release, 1=Press, 2=Repeat).
func keyEventType(value int32) (remap.EventType, bool) {
	switch value {
	case 0:
		return remap.Release, true
	case 1:
		return remap.Press, true
	case 2:
		return remap.Repeat, true
	default:
		return 0, false
	}
}

// Close releases the physical and virtual devices.
func (m *InputMapper) Close() error {
	var inErr, outErr error

	inErr = m.input.Close()
	outErr = m.output.Close()

	if inErr != nil {
		return inErr
	}

	if outErr != nil {
		return outErr
	}

	return nil
}
