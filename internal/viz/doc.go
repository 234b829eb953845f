// Package viz renders pricing results for the terminal: the parenthesized
// surface listing consumed by scripts, an asciigraph chart of the value
// surface, and the lipgloss styles the CLI summary uses.
package viz
