package mode

import (
	"testing"

	"github.com/dshills/vimcore/internal/key"
)

type stubMode struct {
	kind        Kind
	enters      int
	leaves      int
	lastArg     Argument
	canProcess  bool
}

func newStub(k Kind) *stubMode { return &stubMode{kind: k, canProcess: true} }

func (s *stubMode) Kind() Kind                           { return s.kind }
func (s *stubMode) CanProcess(key.Event) bool             { return s.canProcess }
func (s *stubMode) Process(key.Event) ProcessResult       { return NotHandled() }
func (s *stubMode) OnEnter(arg Argument)                  { s.enters++; s.lastArg = arg }
func (s *stubMode) OnLeave()                              { s.leaves++ }
func (s *stubMode) OnClose()                              {}

func TestRegistrySwitchTracksCurrentAndPrevious(t *testing.T) {
	r := NewRegistry()
	n := newStub(Normal)
	i := newStub(Insert)
	r.Add(n)
	r.Add(i)

	if err := r.Switch(Normal, nil); err != nil {
		t.Fatal(err)
	}
	if r.Current().Kind() != Normal {
		t.Fatalf("expected current Normal, got %v", r.Current().Kind())
	}

	if err := r.Switch(Insert, "arg"); err != nil {
		t.Fatal(err)
	}
	if r.Current().Kind() != Insert {
		t.Fatalf("expected current Insert, got %v", r.Current().Kind())
	}
	if r.Previous().Kind() != Normal {
		t.Fatalf("expected previous Normal, got %v", r.Previous().Kind())
	}
	if i.lastArg != "arg" {
		t.Fatalf("expected OnEnter arg 'arg', got %v", i.lastArg)
	}
	if n.leaves != 1 {
		t.Fatalf("expected Normal.OnLeave called once, got %d", n.leaves)
	}
}

func TestRegistrySwitchToSameModeReinvokesLifecycle(t *testing.T) {
	r := NewRegistry()
	n := newStub(Normal)
	r.Add(n)
	r.Switch(Normal, nil)
	r.Switch(Normal, nil)

	if n.enters != 2 {
		t.Fatalf("expected OnEnter called for each switch, even same-kind, got %d", n.enters)
	}
	if n.leaves != 1 {
		t.Fatalf("expected OnLeave called once between the two switches, got %d", n.leaves)
	}
}

func TestRegistrySkipsConsecutiveVisualReselect(t *testing.T) {
	// The skip-consecutive-visual rule only freezes `previous` once it is
	// already a visual kind: entering visual from Normal sets previous to
	// Normal as usual, and the first visual-to-visual hop still updates
	// previous (to the visual kind just left) because the *existing*
	// previous (Normal) is not itself visual. From the second
	// visual-to-visual hop onward, previous is frozen at that first
	// visual kind.
	r := NewRegistry()
	n := newStub(Normal)
	vc := newStub(VisualCharacter)
	vl := newStub(VisualLine)
	vb := newStub(VisualBlock)
	r.Add(n)
	r.Add(vc)
	r.Add(vl)
	r.Add(vb)

	r.Switch(Normal, nil)
	r.Switch(VisualCharacter, "first")
	if r.Previous().Kind() != Normal {
		t.Fatalf("expected previous Normal right after entering visual, got %v", r.Previous().Kind())
	}

	r.Switch(VisualLine, "second")
	if r.Previous().Kind() != VisualCharacter {
		t.Fatalf("expected previous VisualCharacter after the first visual-to-visual hop, got %v", r.Previous().Kind())
	}

	r.Switch(VisualBlock, "third")
	if r.Previous().Kind() != VisualCharacter {
		t.Fatalf("expected previous to stay frozen at VisualCharacter across further visual hops, got %v", r.Previous().Kind())
	}
	if vb.lastArg != "third" {
		t.Fatalf("expected latest arg 'third', got %v", vb.lastArg)
	}
}

func TestRegistrySwitchToPrevious(t *testing.T) {
	r := NewRegistry()
	n := newStub(Normal)
	c := newStub(Command)
	r.Add(n)
	r.Add(c)

	r.Switch(Normal, nil)
	r.Switch(Command, nil)
	if err := r.SwitchToPrevious(); err != nil {
		t.Fatal(err)
	}
	if r.Current().Kind() != Normal {
		t.Fatalf("expected switch-to-previous to land on Normal, got %v", r.Current().Kind())
	}
}

func TestRegistrySwitchUnregisteredKindErrors(t *testing.T) {
	r := NewRegistry()
	if err := r.Switch(Insert, nil); err == nil {
		t.Fatal("expected error switching to unregistered kind")
	}
}

func TestRegistryAsTypedAccessor(t *testing.T) {
	r := NewRegistry()
	n := newStub(Normal)
	r.Add(n)

	got, ok := As[*stubMode](r, Normal)
	if !ok || got != n {
		t.Fatalf("expected typed accessor to return the stub, got %v ok=%v", got, ok)
	}
}

func TestRegistryOnChangeCallback(t *testing.T) {
	r := NewRegistry()
	r.Add(newStub(Normal))
	r.Add(newStub(Insert))
	r.Switch(Normal, nil)

	var from, to Kind
	calls := 0
	r.OnChange(func(f, t Kind) { from, to = f, t; calls++ })

	r.Switch(Insert, nil)
	if calls != 1 || from != Normal || to != Insert {
		t.Fatalf("expected callback(Normal, Insert) once, got calls=%d from=%v to=%v", calls, from, to)
	}
}
