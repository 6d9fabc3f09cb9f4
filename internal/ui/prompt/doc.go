// Package prompt provides simple full-terminal prompts built on Bubble Tea.
//
// Prompts here take over the terminal for a single keypress. The line-based
// prompt shown after interactive hooks lives in the interactive package
// because it must also work when stdin is piped.
package prompt
