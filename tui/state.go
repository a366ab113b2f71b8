// Package tui provides the terminal front-end for the seek bar.
package tui

type state int

const (
	barState state = iota
	promptState
	errorState
)
