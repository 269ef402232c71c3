package util

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Terminal color sequences
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"
)

// GetDisplayWidth calculates the actual display width of a string,
// accounting for wide characters and emojis
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateDisplay shortens text to at most width display columns,
// appending tail when anything was cut off.
func TruncateDisplay(text string, width int, tail string) string {
	return runewidth.Truncate(text, width, tail)
}

// FormatSuccess formats a success message (green)
func FormatSuccess(msg string) string {
	return fmt.Sprintf("%s%s%s", ColorGreen, msg, ColorReset)
}

// FormatFailure formats a failure message (red)
func FormatFailure(msg string) string {
	return fmt.Sprintf("%s%s%s", ColorRed, msg, ColorReset)
}
