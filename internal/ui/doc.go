// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the File menu, the entry list and the record editor to the vocabulary
// store. All UI strings are localized via Localization.
package ui
