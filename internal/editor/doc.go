// Package editor holds the state of the record editor that every presentation
// layer shows: three text fields, an explicit Add/Update submit mode and the
// index of the selected entry. It normalizes and validates input before it
// reaches the vocabulary store.
package editor
