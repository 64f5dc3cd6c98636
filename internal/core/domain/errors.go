package domain

import "go.trai.ch/zerr"

var (
	// ErrPreconditionViolated marks a caller bug, such as matching a directory or a file outside the root.
	ErrPreconditionViolated = zerr.New("precondition violated")

	// ErrNotRegularFile is raised when the matcher is given something other than a regular file.
	ErrNotRegularFile = zerr.New("path is not a regular file")

	// ErrOutsideRoot is raised when the matcher is given a file that does not live under its root.
	ErrOutsideRoot = zerr.New("file is not under the root directory")

	// ErrMalformedLockEntry is returned when an entry of the lock list is not a table of strings.
	ErrMalformedLockEntry = zerr.New("malformed lock entry")

	// ErrUnencodableNotation is returned when a notation key or value is not valid UTF-8 and cannot be written to TOML.
	ErrUnencodableNotation = zerr.New("notation cannot be encoded")

	// ErrForeignExtTable is returned when the settings file has a hand-written [ext] table where the lock region would go.
	ErrForeignExtTable = zerr.New("settings file has a user-defined [ext] table")

	// ErrInvalidNotation is returned when a notation cannot be turned into a dependency.
	ErrInvalidNotation = zerr.New("invalid dependency notation")

	// ErrMissingNotationName is returned when a notation has no name key.
	ErrMissingNotationName = zerr.New("dependency notation has no name")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file is not valid TOML.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrLockFileCreateFailed is returned when the settings file cannot be created before writing the lock.
	ErrLockFileCreateFailed = zerr.New("failed to create lock file")

	// ErrLockFileReadFailed is returned when the settings file cannot be read while writing the lock.
	ErrLockFileReadFailed = zerr.New("failed to read lock file")

	// ErrLockFileWriteFailed is returned when the rewritten settings file cannot be written.
	ErrLockFileWriteFailed = zerr.New("failed to write lock file")

	// ErrModuleFileNotFound is returned when the project has no go.mod.
	ErrModuleFileNotFound = zerr.New("go.mod not found")

	// ErrModuleFileReadFailed is returned when go.mod cannot be read.
	ErrModuleFileReadFailed = zerr.New("failed to read go.mod")

	// ErrModuleFileParseFailed is returned when go.mod cannot be parsed.
	ErrModuleFileParseFailed = zerr.New("failed to parse go.mod")

	// ErrStoreCreateFailed is returned when the lock state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create lock state directory")

	// ErrStoreReadFailed is returned when the lock state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read lock state")

	// ErrStoreUnmarshalFailed is returned when the lock state cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal lock state")

	// ErrStoreMarshalFailed is returned when the lock state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal lock state")

	// ErrStoreWriteFailed is returned when the lock state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write lock state")

	// ErrWalkFailed is returned when a package tree cannot be walked.
	ErrWalkFailed = zerr.New("failed to walk package tree")

	// ErrConfigReadFailed is returned when golock.yaml exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrInvalidOptions is returned when tool options are out of range.
	ErrInvalidOptions = zerr.New("invalid options")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrLockFailed is returned when the lock command cannot complete.
	ErrLockFailed = zerr.New("lock failed")

	// ErrLockOutOfDate is returned by status --check when the lock region is not clean.
	ErrLockOutOfDate = zerr.New("lock region is out of date")
)
