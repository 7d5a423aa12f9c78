package library

// ============================================================================
// PERSISTENCE — Load and atomically save the template library
// ============================================================================
// The library must never block startup: a missing file is an empty
// library, a corrupt file is an empty library plus a warning. Saving goes
// through a temp file in the destination directory and a rename, so a
// crash mid-write can never leave a half-written library behind.
// ============================================================================

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// LibraryFileName is the file the default path points at.
const LibraryFileName = "computed_channels.json"

// ConfigDirEnv overrides the directory DefaultPath resolves to.
const ConfigDirEnv = "ULTRALOG_CONFIG_DIR"

// DefaultPath returns the per-user location of the template library,
// honoring the ConfigDirEnv override.
func DefaultPath() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return filepath.Join(dir, LibraryFileName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, "UltraLog", LibraryFileName), nil
}

// Load reads the library at path. A missing file yields an empty library;
// a corrupt one yields an empty library and a logged warning. Only real
// I/O failures (permissions and the like) return an error.
func Load(path string) (*Library, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read template library: %w", err)
	}
	var lib Library
	if err := json.Unmarshal(raw, &lib); err != nil {
		slog.Warn("template library is corrupt, starting empty",
			"path", path, "error", err)
		return New(), nil
	}
	if lib.Version == 0 {
		lib.Version = CurrentVersion
	}
	if lib.Templates == nil {
		lib.Templates = []Template{}
	}
	return &lib, nil
}

// Save writes the library to path atomically, creating parent directories
// as needed. The on-disk file is either the previous library or the new
// one, never a mix.
func (l *Library) Save(path string) error {
	l.Version = CurrentVersion
	raw, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encode template library: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".computed_channels-*.tmp")
	if err != nil {
		return fmt.Errorf("stage template library: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write template library: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync template library: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close template library: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace template library: %w", err)
	}
	return nil
}
