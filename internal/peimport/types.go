// Package peimport reads import tables out of PE executables and DLLs.
//
// It wraps the debug/pe container parser and normalizes its output into an
// ImportSet, converting every low-level parse failure into an
// ExtractionError. The stdlib parser only decodes headers and sections; the
// import and delay-import directories are walked here.
package peimport

import (
	"fmt"

	orderedmap "github.com/elliotchance/orderedmap/v2"
)

// Symbol is a single imported symbol. A symbol is identified either by name
// or by ordinal, never both; Address is the virtual address of its IAT slot.
type Symbol struct {
	Name      string // empty when imported by ordinal
	Ordinal   uint32 // meaningful only when ByOrdinal
	ByOrdinal bool
	Address   uint64
}

// ImportSet holds the imports of one file, keyed by module name in
// declaration order. Keys preserve the case found in the binary; callers
// match them case-insensitively.
type ImportSet struct {
	Direct  *orderedmap.OrderedMap[string, []Symbol]
	Delayed *orderedmap.OrderedMap[string, []Symbol]
}

// NewImportSet creates an empty ImportSet.
func NewImportSet() *ImportSet {
	return &ImportSet{
		Direct:  orderedmap.NewOrderedMap[string, []Symbol](),
		Delayed: orderedmap.NewOrderedMap[string, []Symbol](),
	}
}

// Empty reports whether the file had no import directory at all.
func (s *ImportSet) Empty() bool {
	return s.Direct.Len() == 0 && s.Delayed.Len() == 0
}

// ModuleRef is one referenced module, tagged with how it is loaded.
// The tag never participates in name matching.
type ModuleRef struct {
	Name    string
	Delayed bool
}

// Modules returns every referenced module in declaration order, direct
// imports first. A module present in both directories appears twice, once
// per tag.
func (s *ImportSet) Modules() []ModuleRef {
	refs := make([]ModuleRef, 0, s.Direct.Len()+s.Delayed.Len())
	for el := s.Direct.Front(); el != nil; el = el.Next() {
		refs = append(refs, ModuleRef{Name: el.Key})
	}
	for el := s.Delayed.Front(); el != nil; el = el.Next() {
		refs = append(refs, ModuleRef{Name: el.Key, Delayed: true})
	}
	return refs
}

// SymbolCount returns the total number of imported symbols across both
// directories.
func (s *ImportSet) SymbolCount() int {
	n := 0
	for el := s.Direct.Front(); el != nil; el = el.Next() {
		n += len(el.Value)
	}
	for el := s.Delayed.Front(); el != nil; el = el.Next() {
		n += len(el.Value)
	}
	return n
}

// ExtractionError wraps any failure to read or parse a binary container.
type ExtractionError struct {
	Path   string
	Detail string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract imports from %s: %s", e.Path, e.Detail)
}
