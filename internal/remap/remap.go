// Package remap implements the key-remap resolver: given a sequence of
// keystrokes and a remap mode, it produces a mapping result describing
// whether the sequence is mapped, needs more input to disambiguate a longer
// entry, or cycles back on itself.
package remap

import (
	"github.com/dshills/vimcore/internal/key"
)

// ResultKind discriminates a Result.
type ResultKind int

const (
	// NoMapping means the sequence has no entry and no entry extends it.
	NoMapping ResultKind = iota
	// NeedsMoreInput means no full match exists but at least one entry
	// properly extends the given sequence.
	NeedsMoreInput
	// Mapped means the sequence resolved to a (possibly expanded) sequence.
	Mapped
	// Recursive means expansion cycled or exceeded the recursion cap.
	Recursive
)

// Result is the output of Resolve: a tagged union over ResultKind.
type Result struct {
	Kind ResultKind
	// Set is populated only when Kind == Mapped.
	Set *key.Sequence
}

func noMapping() Result      { return Result{Kind: NoMapping} }
func needsMoreInput() Result { return Result{Kind: NeedsMoreInput} }
func mapped(s *key.Sequence) Result {
	return Result{Kind: Mapped, Set: s}
}
func recursive() Result { return Result{Kind: Recursive} }

// maxExpansions bounds how many times a single Resolve call may expand a
// mapped entry before giving up and reporting Recursive.
const maxExpansions = 1024

// entry is one installed mapping: lhs -> rhs, with the noremap flag
// disabling recursive expansion of rhs.
type entry struct {
	rhs     *key.Sequence
	noremap bool
}

// node is a trie node keyed by the string form of one key.Event, mirroring
// the longest-prefix-match navigation used by a remap table: each node may
// terminate a mapping (entry != nil) and may also have children extending
// it to a longer lhs.
type node struct {
	children map[string]*node
	entry    *entry
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Table holds, per RemapMode, a trie of installed lhs->rhs mappings.
type Table struct {
	roots map[key.RemapMode]*node
}

// NewTable creates an empty remap table.
func NewTable() *Table {
	return &Table{roots: make(map[key.RemapMode]*node)}
}

func (t *Table) rootFor(mode key.RemapMode) *node {
	r, ok := t.roots[mode]
	if !ok {
		r = newNode()
		t.roots[mode] = r
	}
	return r
}

// Map installs lhs -> rhs for the given mode. noremap disables recursive
// expansion when the installed mapping is later resolved.
func (t *Table) Map(mode key.RemapMode, lhs, rhs *key.Sequence, noremap bool) {
	n := t.rootFor(mode)
	for _, ev := range lhs.Events {
		k := ev.String()
		child, ok := n.children[k]
		if !ok {
			child = newNode()
			n.children[k] = child
		}
		n = child
	}
	n.entry = &entry{rhs: rhs.Clone(), noremap: noremap}
}

// Unmap removes the mapping for lhs in the given mode, if any.
func (t *Table) Unmap(mode key.RemapMode, lhs *key.Sequence) {
	n, ok := t.roots[mode]
	if !ok {
		return
	}
	for _, ev := range lhs.Events {
		child, ok := n.children[ev.String()]
		if !ok {
			return
		}
		n = child
	}
	n.entry = nil
}

// Clear removes every mapping installed for the given mode.
func (t *Table) Clear(mode key.RemapMode) {
	delete(t.roots, mode)
}

// lookup walks the trie for mode along seq, reporting whether an entry
// terminates exactly at seq (exact) and whether any strictly longer entry
// extends seq (hasLongerPrefix).
func (t *Table) lookup(mode key.RemapMode, seq *key.Sequence) (exact *entry, hasLongerPrefix bool) {
	root, ok := t.roots[mode]
	if !ok {
		return nil, false
	}
	n := root
	for _, ev := range seq.Events {
		child, ok := n.children[ev.String()]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n.entry, len(n.children) > 0
}

// Resolver resolves key sequences against a Table for a given remap mode.
// It is pure with respect to any engine state; all state is the Table
// itself, which callers mutate via Map/Unmap/Clear.
type Resolver struct {
	table *Table
}

// NewResolver creates a Resolver backed by table.
func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve implements C1: given seq and an optional mode, produce one of
// {NoMapping, NeedsMoreInput, Mapped(expanded), Recursive}. hasMode is
// false when the caller's current mode has no remap mode (Disabled,
// SubstituteConfirm, ExternalEdit); Resolve then returns Mapped(seq)
// unchanged without consulting the table.
func (r *Resolver) Resolve(seq *key.Sequence, mode key.RemapMode, hasMode bool) Result {
	if !hasMode {
		return mapped(seq.Clone())
	}

	exact, hasLonger := r.table.lookup(mode, seq)
	if exact == nil {
		if hasLonger {
			return needsMoreInput()
		}
		return noMapping()
	}

	if exact.noremap {
		return mapped(exact.rhs.Clone())
	}

	expanded, ok := r.expand(mode, exact.rhs)
	if !ok {
		return recursive()
	}
	return mapped(expanded)
}

// expand recursively expands rhs against the table, stopping at the
// expansion cap or when a visited (mode, sequence) pair recurs.
func (r *Resolver) expand(mode key.RemapMode, rhs *key.Sequence) (*key.Sequence, bool) {
	visited := map[string]bool{}
	count := 0

	var step func(s *key.Sequence) (*key.Sequence, bool)
	step = func(s *key.Sequence) (*key.Sequence, bool) {
		count++
		if count > maxExpansions {
			return nil, false
		}

		visitKey := mode.String() + "\x00" + s.VimString()
		if visited[visitKey] {
			return nil, false
		}
		visited[visitKey] = true

		exact, _ := r.table.lookup(mode, s)
		if exact == nil || exact.noremap {
			if exact != nil {
				return exact.rhs.Clone(), true
			}
			return s, true
		}

		return step(exact.rhs)
	}

	return step(rhs)
}
