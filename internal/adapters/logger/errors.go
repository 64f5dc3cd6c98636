package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

// metadater matches zerr errors carrying key-value context.
type metadater interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain while errors know their own message.
// The first plain error ends the walk with its full text.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}

		entry := errorEntry{message: m.Message()}
		if md, ok := current.(metadater); ok {
			entry.metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by a "Caused by:" list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata("       ", entry.metadata)...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata("      ", entry.metadata)...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(indent string, md map[string]any) []string {
	lines := make([]string, 0, len(md))
	for _, key := range slices.Sorted(maps.Keys(md)) {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, md[key]))
	}
	return lines
}

func jsonAttrs(err error, entries []errorEntry) []any {
	attrs := []any{slog.String("error", err.Error())}

	causes := make([]string, 0, len(entries)-1)
	for _, entry := range entries[1:] {
		causes = append(causes, entry.message)
	}
	if len(causes) > 0 {
		attrs = append(attrs, slog.Any("causes", causes))
	}

	for _, entry := range entries {
		for _, key := range slices.Sorted(maps.Keys(entry.metadata)) {
			attrs = append(attrs, slog.Any(key, entry.metadata[key]))
		}
	}
	return attrs
}
