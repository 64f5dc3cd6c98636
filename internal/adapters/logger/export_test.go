// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry exposes the collected form of one error in a chain.
type ErrorEntry = errorEntry

// Message returns the entry's own message.
func (e errorEntry) Message() string { return e.message }

// Metadata returns the entry's key-value context.
func (e errorEntry) Metadata() map[string]any { return e.metadata }

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
