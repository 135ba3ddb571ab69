package keymapstore

import (
	"path/filepath"
	"testing"

	"github.com/dshills/vimcore/internal/key"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "keymaps.json"))
}

func TestGetMissingReturnsFalse(t *testing.T) {
	s := newTestStore(t)
	_, ok, err := s.Get(key.RemapNormal, "gg")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no entry for an empty store")
	}
}

func TestSetThenGetRoundTrips(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set(key.RemapNormal, "gg", "1G", false); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.Get(key.RemapNormal, "gg")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got.Rhs != "1G" || got.NoRemap {
		t.Fatalf("expected {1G false}, got %+v ok=%v", got, ok)
	}
}

func TestSetDoesNotDisturbOtherModes(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set(key.RemapNormal, "j", "gj", true); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(key.RemapVisual, "j", "gj", true); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(key.RemapNormal, "j"); !ok {
		t.Fatal("expected normal-mode mapping to survive a visual-mode write")
	}
	if _, ok, _ := s.Get(key.RemapVisual, "j"); !ok {
		t.Fatal("expected visual-mode mapping to be persisted")
	}
}

func TestLhsWithDotEscapesCorrectly(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set(key.RemapNormal, "g.", "someaction", false); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.Get(key.RemapNormal, "g.")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got.Rhs != "someaction" {
		t.Fatalf("expected the dotted lhs to round-trip, got %+v ok=%v", got, ok)
	}
}

func TestDeleteRemovesOnlyThatMapping(t *testing.T) {
	s := newTestStore(t)
	_ = s.Set(key.RemapNormal, "j", "gj", true)
	_ = s.Set(key.RemapNormal, "k", "gk", true)
	if err := s.Delete(key.RemapNormal, "j"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(key.RemapNormal, "j"); ok {
		t.Fatal("expected j to be deleted")
	}
	if _, ok, _ := s.Get(key.RemapNormal, "k"); !ok {
		t.Fatal("expected k to survive")
	}
}

func TestClearRemovesWholeMode(t *testing.T) {
	s := newTestStore(t)
	_ = s.Set(key.RemapNormal, "j", "gj", true)
	_ = s.Set(key.RemapNormal, "k", "gk", true)
	if err := s.Clear(key.RemapNormal); err != nil {
		t.Fatal(err)
	}
	all, err := s.All(key.RemapNormal)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no mappings after Clear, got %+v", all)
	}
}

func TestAllListsEveryMappingForMode(t *testing.T) {
	s := newTestStore(t)
	_ = s.Set(key.RemapNormal, "j", "gj", true)
	_ = s.Set(key.RemapNormal, "k", "gk", true)
	all, err := s.All(key.RemapNormal)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all["j"].Rhs != "gj" || all["k"].Rhs != "gk" {
		t.Fatalf("unexpected result: %+v", all)
	}
}
