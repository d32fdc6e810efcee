package backdrop

import (
	"fmt"

	"github.com/yourusername/window-backdrop/internal/winver"
)

// CallKind names the OS function behind a recorded Call.
type CallKind string

const (
	CallEnableBlurBehind              CallKind = "DwmEnableBlurBehindWindow"
	CallSetWindowAttribute            CallKind = "DwmSetWindowAttribute"
	CallSetWindowCompositionAttribute CallKind = "SetWindowCompositionAttribute"
)

// Call is one OS call recorded by a Simulator. Only the fields relevant to
// Kind are set.
type Call struct {
	Kind      CallKind
	HWND      HWND
	Enable    bool
	Attribute WindowAttribute
	Value     uint32
	Accent    AccentPolicy
}

func (c Call) String() string {
	switch c.Kind {
	case CallEnableBlurBehind:
		return fmt.Sprintf("%s(hwnd=%#x, enable=%v)", c.Kind, uintptr(c.HWND), c.Enable)
	case CallSetWindowAttribute:
		return fmt.Sprintf("%s(hwnd=%#x, attr=%d, value=%d)", c.Kind, uintptr(c.HWND), c.Attribute, c.Value)
	case CallSetWindowCompositionAttribute:
		return fmt.Sprintf("%s(hwnd=%#x, attr=%#x, accent={state=%d flags=%d gradient=%#08x animation=%d})",
			c.Kind, uintptr(c.HWND), uint32(AttrAccentPolicy),
			c.Accent.State, c.Accent.Flags, c.Accent.GradientColor, c.Accent.AnimationID)
	default:
		return string(c.Kind)
	}
}

// Simulator is a System that reports a fixed version and records the calls
// it receives instead of issuing them. It is not safe for concurrent use.
type Simulator struct {
	// Ver is the version reported when Known is true.
	Ver   winver.Version
	Known bool

	// CompositionUnavailable makes SetAccentPolicy behave as if the export
	// could not be resolved: nothing is recorded and ErrProcNotFound is returned.
	CompositionUnavailable bool

	// Err, if set, is returned by every recorded DWM call.
	Err error

	calls []Call
}

// NewSimulator returns a Simulator reporting v.
func NewSimulator(v winver.Version) *Simulator {
	return &Simulator{Ver: v, Known: true}
}

// Calls returns a copy of the recorded calls in order.
func (s *Simulator) Calls() []Call {
	return append([]Call(nil), s.calls...)
}

// Reset forgets the recorded calls.
func (s *Simulator) Reset() {
	s.calls = nil
}

func (s *Simulator) Version() (winver.Version, bool) {
	if !s.Known {
		return winver.Version{}, false
	}
	return s.Ver, true
}

func (s *Simulator) EnableBlurBehind(hwnd HWND, enable bool) error {
	s.calls = append(s.calls, Call{Kind: CallEnableBlurBehind, HWND: hwnd, Enable: enable})
	return s.Err
}

func (s *Simulator) SetWindowAttribute(hwnd HWND, attr WindowAttribute, value uint32) error {
	s.calls = append(s.calls, Call{Kind: CallSetWindowAttribute, HWND: hwnd, Attribute: attr, Value: value})
	return s.Err
}

func (s *Simulator) SetAccentPolicy(hwnd HWND, policy AccentPolicy) error {
	if s.CompositionUnavailable {
		return ErrProcNotFound
	}
	s.calls = append(s.calls, Call{Kind: CallSetWindowCompositionAttribute, HWND: hwnd, Accent: policy})
	return nil
}
