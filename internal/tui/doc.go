// Package tui is the terminal driver: a Bubble Tea program with the entry
// list on the left and the record editor on the right.
package tui
