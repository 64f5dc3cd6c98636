package domain

import "path/filepath"

const (
	// SettingsFileName is the well-known settings file that carries the lock region.
	SettingsFileName = "settings.toml"

	// GoModFileName is the module file read as the resolved dependency source.
	GoModFileName = "go.mod"

	// ConfigFileName is the optional tool configuration file.
	ConfigFileName = "golock.yaml"

	// StateDirName is the name of the internal state directory.
	StateDirName = ".golock"

	// StateFileName is the name of the lock state file inside StateDirName.
	StateFileName = "state.json"

	// LockExtensionProperty is the settings table holding extension properties.
	LockExtensionProperty = "ext"

	// LockProperty is the property inside LockExtensionProperty that holds the lock list.
	LockProperty = "lock"

	// LockMarker starts the generated region. Everything from this line to EOF is owned by golock.
	LockMarker = "[" + LockExtensionProperty + "]"

	// LockWarning follows the marker on the same line.
	LockWarning = "# The following lines are auto-generated by golock, you should NEVER modify them manually."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// SettingsPath returns the settings file path for a project root.
func SettingsPath(root string) string {
	return filepath.Join(root, SettingsFileName)
}

// GoModPath returns the go.mod path for a project root.
func GoModPath(root string) string {
	return filepath.Join(root, GoModFileName)
}

// DefaultStatePath returns the lock state file path for a project root.
// It joins .golock and state.json.
func DefaultStatePath(root string) string {
	return filepath.Join(root, StateDirName, StateFileName)
}
