// Package model defines the vocabulary record shared by the store, the editor
// and every presentation layer, plus the submit-mode enum of the record editor.
package model
