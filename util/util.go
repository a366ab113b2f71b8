// Package util holds small helpers shared by the commands and front-ends.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/term"
)

var (
	unsafeRunes = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]+`)
	runs        = regexp.MustCompile(`_{2,}`)
	trimmed     = "_-."
)

// SanitizeFilename maps name onto something every common filesystem accepts.
func SanitizeFilename(name string) string {
	name = unsafeRunes.ReplaceAllLiteralString(name, "_")
	name = runs.ReplaceAllLiteralString(name, "_")
	return strings.Trim(name, trimmed)
}

// Quantify formats count followed by the matching noun.
func Quantify(count int, singular, plural string) string {
	return fmt.Sprint(count, " ", lo.Ternary(count == 1, singular, plural))
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TerminalSize reports the columns and rows of the terminal on stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FileStem is the base name of path with its last extension removed.
func FileStem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Ignore calls f and drops its error. Meant for deferred Close calls.
func Ignore(f func() error) {
	_ = f()
}
