// Package lockfile encodes lock notations and maintains the generated region of the settings file.
package lockfile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockCodec = (*Codec)(nil)

// Codec writes notations as TOML inline tables with sorted, quoted keys.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode renders notation as a single inline table, e.g. {"name" = "a", "version" = "v1"}.
// Keys and values must be valid UTF-8.
func (c *Codec) Encode(notation domain.Notation) (string, error) {
	if len(notation) == 0 {
		return "{}", nil
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, key := range notation.Keys() {
		value := notation[key]
		if !utf8.ValidString(key) || !utf8.ValidString(value) {
			return "", zerr.With(domain.ErrUnencodableNotation, "key", fmt.Sprintf("%q", key))
		}
		if i > 0 {
			b.WriteString(", ")
		}
		writeBasicString(&b, key)
		b.WriteString(" = ")
		writeBasicString(&b, value)
	}
	b.WriteByte('}')
	return b.String(), nil
}

// Decode converts the value TOML produced for the lock property into notations.
func (c *Codec) Decode(raw any) ([]domain.Notation, bool, error) {
	switch list := raw.(type) {
	case []map[string]any:
		out := make([]domain.Notation, 0, len(list))
		for i, table := range list {
			n, err := decodeTable(i, table)
			if err != nil {
				return nil, false, err
			}
			out = append(out, n)
		}
		return out, true, nil
	case []any:
		out := make([]domain.Notation, 0, len(list))
		for i, item := range list {
			table, ok := item.(map[string]any)
			if !ok {
				err := zerr.With(domain.ErrMalformedLockEntry, "index", i)
				return nil, false, zerr.With(err, "type", fmt.Sprintf("%T", item))
			}
			n, err := decodeTable(i, table)
			if err != nil {
				return nil, false, err
			}
			out = append(out, n)
		}
		return out, true, nil
	default:
		return nil, false, nil
	}
}

func decodeTable(index int, table map[string]any) (domain.Notation, error) {
	n := make(domain.Notation, len(table))
	for key, value := range table {
		s, ok := value.(string)
		if !ok {
			err := zerr.With(domain.ErrMalformedLockEntry, "index", index)
			err = zerr.With(err, "key", key)
			return nil, zerr.With(err, "type", fmt.Sprintf("%T", value))
		}
		n[key] = s
	}
	return n, nil
}

// writeBasicString writes s as a TOML basic string.
func writeBasicString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
