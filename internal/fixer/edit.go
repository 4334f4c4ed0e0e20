package fixer

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEditOutOfRange indicates an edit that does not fit the source.
	ErrEditOutOfRange = errors.New("edit out of range")

	// ErrOverlappingEdits indicates two edits touching the same bytes.
	ErrOverlappingEdits = errors.New("overlapping edits")

	// ErrStaleEdit indicates the source no longer holds the text an edit replaces.
	ErrStaleEdit = errors.New("stale edit")
)

// TextEdit replaces the bytes [StartOffset, EndOffset) of a source file.
type TextEdit struct {
	StartOffset int
	EndOffset   int

	// OldText is the text being replaced, NewText its replacement.
	OldText string
	NewText string

	// Line and Column locate StartOffset, 1-based.
	Line   int
	Column int
}

// ApplyEdits returns a copy of source with all edits applied. Edits may be
// given in any order but must not overlap.
func ApplyEdits(source []byte, edits []TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return source, nil
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartOffset < sorted[j].StartOffset
	})

	var out bytes.Buffer
	out.Grow(len(source))

	cursor := 0
	for _, edit := range sorted {
		if edit.StartOffset < 0 || edit.EndOffset < edit.StartOffset || edit.EndOffset > len(source) {
			return nil, fmt.Errorf("%w: [%d, %d) in %d bytes", ErrEditOutOfRange, edit.StartOffset, edit.EndOffset, len(source))
		}
		if edit.StartOffset < cursor {
			return nil, fmt.Errorf("%w: edit at offset %d starts before %d", ErrOverlappingEdits, edit.StartOffset, cursor)
		}
		if current := string(source[edit.StartOffset:edit.EndOffset]); current != edit.OldText {
			return nil, fmt.Errorf("%w: expected %q at line %d, found %q", ErrStaleEdit, edit.OldText, edit.Line, current)
		}

		out.Write(source[cursor:edit.StartOffset])
		out.WriteString(edit.NewText)
		cursor = edit.EndOffset
	}
	out.Write(source[cursor:])

	return out.Bytes(), nil
}
