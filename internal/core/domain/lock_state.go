package domain

import "time"

// LockState records what golock last wrote into a settings file.
type LockState struct {
	SettingsPath string    `json:"settings_path,omitzero"`
	Digest       string    `json:"digest,omitzero"`
	Entries      int       `json:"entries,omitzero"`
	LockedAt     time.Time `json:"locked_at,omitzero"`
}

// LockResult describes the outcome of one lock call.
type LockResult struct {
	SettingsPath string
	Locked       int
	Skipped      int
	Changed      bool
	// Block is the generated region as written, marker line first.
	Block []string
}

// LockStatus classifies the generated region of a settings file.
type LockStatus string

const (
	// StatusClean means the region matches what golock last wrote.
	StatusClean LockStatus = "clean"
	// StatusModified means the region was edited after golock wrote it.
	StatusModified LockStatus = "modified"
	// StatusUnlocked means the settings file has no generated region.
	StatusUnlocked LockStatus = "unlocked"
	// StatusUntracked means a region exists but golock has no record of writing it.
	StatusUntracked LockStatus = "untracked"
)

// StatusReport is the result of inspecting a project's lock region.
type StatusReport struct {
	Status       LockStatus
	SettingsPath string
	Digest       string
	Recorded     *LockState
}
