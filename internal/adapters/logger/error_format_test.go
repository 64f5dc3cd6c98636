package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/golock/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func messages(entries []logger.ErrorEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message())
	}
	return out
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"standard error", errors.New("simple error"), []string{"simple error"}},
		{"zerr single", zerr.New("zerr error"), []string{"zerr error"}},
		{
			"zerr chain",
			zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			[]string{"outer layer", "middle layer", "root cause"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messages(logger.CollectErrorEntries(tt.err)))
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.New("base error"), "key", "value")

	entries := logger.CollectErrorEntries(err)
	require.Len(t, entries, 1)
	assert.Equal(t, "value", entries[0].Metadata()["key"])
}

func TestFormatErrorEntries_MultilineMessages(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.Wrap(errors.New("cause\ndetail"), "top\nmore"))

	want := "Error: top\n" +
		"       more\n" +
		"\n" +
		"  Caused by:\n" +
		"    → cause\n" +
		"      detail"
	assert.Equal(t, want, logger.FormatErrorEntries(entries))
}
