package logparse

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sanitize coerces raw build output to valid UTF-8. Compilers are only
// UTF-8-ish: a source file with a broken encoding leaks invalid bytes
// into the log, and those would otherwise survive into record messages.
// Invalid sequences are replaced with U+FFFD.
func Sanitize(raw []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
