// Package interactive shows hook output to a person and asks what to do
// next.
//
// [FormatBox] renders output in a fixed-width bordered box. A [Controller]
// reads a one-line decision from the terminal and can open the full text
// in a pager.
//
// When standard input is not a terminal (scripts, CI, pipes), Prompt
// answers [Abort] without printing anything, so an unattended run never
// waits for input and never continues past an interactive hook by
// accident.
package interactive
