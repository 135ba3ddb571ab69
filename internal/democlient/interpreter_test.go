package democlient

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/remap"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	c, err := New(Config{Screen: screen})
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestExecuteLineSetAssign(t *testing.T) {
	c := newTestClient(t)
	c.executeLine(context.Background(), "set ignorecase=true")
	if !c.settings.IgnoreCase {
		t.Fatalf("expected ignorecase set, statusMsg=%q", c.statusMsg)
	}
}

func TestExecuteLineSetInvert(t *testing.T) {
	c := newTestClient(t)
	before := c.settings.IgnoreCase
	c.executeLine(context.Background(), "set ignorecase!")
	if c.settings.IgnoreCase == before {
		t.Fatal("expected ignorecase to invert")
	}
}

func TestExecuteLineSetUnsupportedOperator(t *testing.T) {
	c := newTestClient(t)
	c.executeLine(context.Background(), "set ignorecase+=1")
	if c.statusMsg == "" {
		t.Fatal("expected a status message explaining the operator is unsupported")
	}
}

func TestExecuteLineMapAndUnmap(t *testing.T) {
	c := newTestClient(t)
	c.executeLine(context.Background(), "nnoremap jk <Esc>")

	seq, err := key.ParseSequence("jk")
	if err != nil {
		t.Fatalf("ParseSequence: %s", err)
	}
	resolver := remap.NewResolver(c.table)
	if res := resolver.Resolve(seq, key.RemapNormal, true); res.Kind != remap.Mapped {
		t.Fatalf("expected jk to be mapped in normal mode, got %v", res.Kind)
	}

	c.executeLine(context.Background(), "nunmap jk")
	if res := resolver.Resolve(seq, key.RemapNormal, true); res.Kind == remap.Mapped {
		t.Fatal("expected jk to be unmapped in normal mode")
	}
}

func TestExecuteLineQuit(t *testing.T) {
	c := newTestClient(t)
	if c.quit {
		t.Fatal("client should not start quit")
	}
	c.executeLine(context.Background(), "q")
	if !c.quit {
		t.Fatal("expected :q to set quit")
	}
}

func TestExecuteLineUnparseable(t *testing.T) {
	c := newTestClient(t)
	c.executeLine(context.Background(), "%^&not a command")
	if c.statusMsg == "" {
		t.Fatal("expected a parse-error status message")
	}
}

func TestExecuteLineBlank(t *testing.T) {
	c := newTestClient(t)
	c.statusMsg = "untouched"
	c.executeLine(context.Background(), "   ")
	if c.statusMsg != "untouched" {
		t.Fatalf("blank line should be a no-op, got %q", c.statusMsg)
	}
}

func TestExecuteLinePopulatesLastCommandRegister(t *testing.T) {
	c := newTestClient(t)
	c.executeLine(context.Background(), "set ignorecase=true")

	content, _, _ := c.Registers().Get(':')
	if content != "set ignorecase=true" {
		t.Fatalf("expected ':' register to hold the last command, got %q", content)
	}
}

func TestExecuteLineBlankLeavesLastCommandRegister(t *testing.T) {
	c := newTestClient(t)
	c.executeLine(context.Background(), "q")
	c.executeLine(context.Background(), "   ")

	content, _, _ := c.Registers().Get(':')
	if content != "q" {
		t.Fatalf("expected blank line to leave the ':' register alone, got %q", content)
	}
}
