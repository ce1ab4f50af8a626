package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Decomposition Colors
var (
	NumberColor    = color.New(color.FgBlue, color.Bold).SprintFunc()
	DigitsColor    = color.New(color.FgYellow).SprintFunc()
	CountColor     = color.New(color.FgWhite).SprintFunc()
	ZeroCountColor = color.New(color.FgHiBlack).SprintFunc() // Digits that never occur
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Disable turns off colour for every helper above.
func Disable() {
	color.NoColor = true
}
