package value

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/hash"
)

// Evaluate is a handle to a block of code that has not been evaluated. Values
// only carry it around; they never run it.
type Evaluate struct {
	ID     uuid.UUID `json:"id" yaml:"id"`
	Source string    `json:"source" yaml:"source"`
	Span   diag.Span `json:"span" yaml:"span"`
}

// NewEvaluate returns a handle for the code at span in source, with a fresh
// ID.
func NewEvaluate(source string, s diag.Span) *Evaluate {
	return &Evaluate{ID: uuid.New(), Source: source, Span: s}
}

func compareEvaluate(a, b *Evaluate, spans bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := bytes.Compare(a.ID[:], b.ID[:]); c != 0 {
		return c
	}
	if c := strings.Compare(a.Source, b.Source); c != 0 {
		return c
	}
	if spans {
		return a.Span.Compare(b.Span)
	}
	return 0
}

func hashEvaluate(e *Evaluate, spans bool) uint32 {
	if e == nil {
		return hash.DJBInit
	}
	h := hash.DJBCombine(hash.Bytes(e.ID[:]), hash.String(e.Source))
	if spans {
		h = hash.DJBCombine(h, e.Span.Hash())
	}
	return h
}
