// Package testutil provides helpers that build definition files for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Field is one key/value pair of a definition record. A Raw field is written
// verbatim, for byte sequences that do not follow the key/value layout.
type Field struct {
	Key   string
	Value string
	Raw   bool
}

// F builds a field, formatting value with fmt.Sprint.
func F(key string, value any) Field {
	return Field{Key: key, Value: fmt.Sprint(value)}
}

func Raw(text string) Field {
	return Field{Value: text, Raw: true}
}

// SiteCount writes the site count the way carrier files store it: the
// Site.Cnt key, a marker byte and the count digits.
func SiteCount(marker string, count int) Field {
	return Raw(fmt.Sprintf("%cSite.Cnt%s%d", byte(len("Site.Cnt")), marker, count))
}

// Encode writes fields as length prefixed tokens: one length byte and the key,
// then one length byte and the value.
func Encode(fields ...Field) string {
	var b strings.Builder
	for _, field := range fields {
		if field.Raw {
			b.WriteString(field.Value)
			continue
		}
		b.WriteByte(byte(len(field.Key)))
		b.WriteString(field.Key)
		b.WriteByte(byte(len(field.Value)))
		b.WriteString(field.Value)
	}
	return b.String()
}

// WriteDefinition encodes fields into dir/name and returns the path.
func WriteDefinition(t *testing.T, dir string, name string, fields ...Field) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(Encode(fields...)), 0644))
	return path
}
