package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/text/encoding/charmap"

	"labware-import/internal/ports"
	"labware-import/internal/types"
)

// Record gives typed access to the fields of one definition file. The text is
// kept one byte per character as stored on disk; string values are decoded
// from ISO-8859-1 when they are returned.
type Record struct {
	Path string
	text string
}

func NewRecord(raw types.RawRecord) Record {
	return Record{Path: raw.Path, text: raw.Text}
}

func (r Record) Text() string {
	return r.text
}

func (r Record) Int(key string) (int, error) {
	return FindInt(key, r.text)
}

func (r Record) Float(key string) (float64, error) {
	return FindFloat(key, r.text)
}

func (r Record) String(key string) (string, error) {
	return FindString(key, r.text)
}

// Has reports whether key occurs in the record.
func (r Record) Has(key string) bool {
	_, ok := lookupValue(key, r.text)
	return ok
}

// FindString returns the value stored after the first occurrence of key.
func FindString(key string, text string) (string, error) {
	value, ok := lookupValue(key, text)
	if !ok {
		return "", keyNotFound(key)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(value)
	if err != nil {
		return "", invalidValue("string", key, value, err)
	}
	return decoded, nil
}

func FindInt(key string, text string) (int, error) {
	value, ok := lookupValue(key, text)
	if !ok {
		return 0, keyNotFound(key)
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, invalidValue("integer", key, value, err)
	}
	return parsed, nil
}

func FindFloat(key string, text string) (float64, error) {
	value, ok := lookupValue(key, text)
	if !ok {
		return 0, keyNotFound(key)
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, invalidValue("float", key, value, err)
	}
	return parsed, nil
}

// IsKeyNotFound reports whether err is a missing-key lookup failure.
func IsKeyNotFound(err error) bool {
	return err != nil && errbuilder.CodeOf(err) == errbuilder.CodeNotFound
}

// FirstString tries keys in order and returns the first one present. Only a
// missing key moves on to the next candidate.
func FirstString(lookup ports.FieldLookup, keys ...string) (string, error) {
	var lastErr error
	for _, key := range keys {
		value, err := lookup.String(key)
		if err == nil {
			return value, nil
		}
		if !IsKeyNotFound(err) {
			return "", err
		}
		lastErr = err
	}
	if lastErr == nil {
		return "", keyNotFound(strings.Join(keys, "|"))
	}
	return "", lastErr
}

// lookupValue finds key as a whole token: it must start the text or follow a
// control byte, and is followed by one separator byte. Fields are written as
// length-prefixed tokens, so the separator is normally the value length. A
// control separator is followed by a value running up to the next control
// byte; a printable separator only occurs for values of 32 bytes or more and
// is read as an exact length.
func lookupValue(key string, text string) (string, bool) {
	if key == "" {
		return "", false
	}
	offset := 0
	for offset < len(text) {
		idx := strings.Index(text[offset:], key)
		if idx < 0 {
			return "", false
		}
		start := offset + idx
		end := start + len(key)
		offset = start + 1
		if start > 0 && !isControl(text[start-1]) {
			continue
		}
		if end >= len(text) {
			continue
		}
		separator := text[end]
		valueStart := end + 1
		if isControl(separator) {
			valueEnd := valueStart
			for valueEnd < len(text) && !isControl(text[valueEnd]) {
				valueEnd++
			}
			return text[valueStart:valueEnd], true
		}
		valueEnd := valueStart + int(separator)
		if valueEnd > len(text) {
			continue
		}
		if valueEnd < len(text) && !isControl(text[valueEnd]) {
			continue
		}
		return text[valueStart:valueEnd], true
	}
	return "", false
}

func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

func keyNotFound(key string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("key not found: %s", key))
}

func invalidValue(kind string, key string, value string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid %s value for %s: %q", kind, key, value)).
		WithCause(cause)
}

var _ ports.FieldLookup = Record{}
