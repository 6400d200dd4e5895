// Package editor holds the key/value pair currently being composed.
//
// A Buffer has two rune fields and a focus. Typed characters go to the
// focused field; TakePair drains both fields in one read so a pair can only
// be committed once. Focus is FieldNone whenever the editing popup is closed.
package editor
