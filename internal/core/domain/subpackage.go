package domain

const (
	// AllDescendants selects every file under the root, at any depth.
	AllDescendants = "..."

	// OnlyCurrentFiles selects the files directly inside the root.
	OnlyCurrentFiles = "."

	// DirectFilesSuffix turns "<relpath>/." into "only the files directly inside <relpath>".
	DirectFilesSuffix = "/."
)
