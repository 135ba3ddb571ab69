package democlient

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimcore/internal/mode"
	"github.com/dshills/vimcore/internal/modekit"
)

func TestNewRegistersEveryMode(t *testing.T) {
	c := newTestClient(t)

	want := []mode.Kind{
		mode.Normal, mode.Insert, mode.Replace,
		mode.VisualCharacter, mode.VisualLine, mode.VisualBlock,
		mode.OperatorPending, mode.Command, mode.SubstituteConfirm,
		mode.Disabled, mode.ExternalEdit,
	}
	for _, k := range want {
		if _, ok := c.registry.Get(k); !ok {
			t.Errorf("expected mode %s to be registered", k.String())
		}
	}
	if c.registry.Current().Kind() != mode.Normal {
		t.Fatalf("expected to start in Normal, got %s", c.registry.Current().Kind().String())
	}
}

func TestDispatchExecutesExCommand(t *testing.T) {
	c := newTestClient(t)
	c.Dispatch(modekit.Command{
		Action: "excmd.execute",
		Args:   map[string]any{"line": "q"},
	})
	if !c.quit {
		t.Fatal("expected dispatching excmd.execute \"q\" to quit")
	}
}

func TestDispatchIgnoresUnknownAction(t *testing.T) {
	c := newTestClient(t)
	c.Dispatch(modekit.Command{Action: "noop"})
	if c.quit {
		t.Fatal("unrelated actions must not quit the client")
	}
}

func TestCloseIsIdempotentSafe(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	c, err := New(Config{Screen: screen})
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %s", err)
	}
}

func TestAccessorsExposeWiring(t *testing.T) {
	c := newTestClient(t)
	if c.Registry() == nil {
		t.Fatal("expected Registry() to return the mode registry")
	}
	if c.RemapTable() == nil {
		t.Fatal("expected RemapTable() to return the remap table")
	}
	if !c.Settings().Magic {
		t.Fatal("expected default settings to carry magic=true")
	}
	if c.Registers() == nil {
		t.Fatal("expected Registers() to return the register store")
	}
}

func TestRenderDoesNotPanicBeforeInit(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %s", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	c, err := New(Config{Screen: screen})
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	c.render()
}
