package editor

import (
	"fmt"

	"github.com/muurk/kvpairs/internal/apperror"
)

// Field identifies which input receives typed characters
type Field int

const (
	FieldNone Field = iota
	FieldKey
	FieldValue
)

// String returns a human-readable name for the field
func (f Field) String() string {
	switch f {
	case FieldNone:
		return "none"
	case FieldKey:
		return "key"
	case FieldValue:
		return "value"
	default:
		return fmt.Sprintf("Field(%d)", f)
	}
}

// Buffer holds the key and value text being edited and the focused field.
// The zero value is an idle buffer with no focus.
type Buffer struct {
	key   []rune
	value []rune
	focus Field
}

// Begin clears both fields and focuses the key
func (b *Buffer) Begin() {
	b.key = b.key[:0]
	b.value = b.value[:0]
	b.focus = FieldKey
}

// Reset discards both fields and drops focus
func (b *Buffer) Reset() {
	b.key = b.key[:0]
	b.value = b.value[:0]
	b.focus = FieldNone
}

// ToggleFocus swaps focus between key and value
func (b *Buffer) ToggleFocus() error {
	switch b.focus {
	case FieldKey:
		b.focus = FieldValue
	case FieldValue:
		b.focus = FieldKey
	default:
		return apperror.NewInvariantViolation("editor.ToggleFocus", "no field has focus")
	}
	return nil
}

// PushChar appends r to the focused field
func (b *Buffer) PushChar(r rune) {
	switch b.focus {
	case FieldKey:
		b.key = append(b.key, r)
	case FieldValue:
		b.value = append(b.value, r)
	}
}

// PopChar removes the last character of the focused field, if any
func (b *Buffer) PopChar() {
	switch b.focus {
	case FieldKey:
		if len(b.key) > 0 {
			b.key = b.key[:len(b.key)-1]
		}
	case FieldValue:
		if len(b.value) > 0 {
			b.value = b.value[:len(b.value)-1]
		}
	}
}

// TakePair returns the key and value and clears both fields. Focus is kept.
func (b *Buffer) TakePair() (string, string) {
	key, value := string(b.key), string(b.value)
	b.key = b.key[:0]
	b.value = b.value[:0]
	return key, value
}

// Key returns the key text
func (b *Buffer) Key() string {
	return string(b.key)
}

// Value returns the value text
func (b *Buffer) Value() string {
	return string(b.value)
}

// Focus returns the focused field
func (b *Buffer) Focus() Field {
	return b.focus
}
