// Package sandbox restricts filesystem reads to a set of allowed path prefixes.
// It is disabled by default, in which case every path is readable.
package sandbox

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Common sandbox errors.
var (
	ErrAccessDenied   = errors.New("access denied: path not in sandbox")
	ErrNotInitialized = errors.New("sandbox not initialized")
)

// Sandbox holds the read scope.
type Sandbox struct {
	mu      sync.RWMutex
	roots   []string
	enabled bool
}

// Config holds sandbox configuration.
type Config struct {
	// Directories (and everything below them) that may be read.
	AllowedPaths []string
	// Allow reads below the current working directory.
	AllowCwd bool
}

// ConfigFromList builds a Config from a filepath.ListSeparator separated list
// such as the value of an environment variable. Empty elements are skipped.
func ConfigFromList(list string) *Config {
	cfg := &Config{}
	for _, p := range filepath.SplitList(list) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		cfg.AllowedPaths = append(cfg.AllowedPaths, p)
	}
	return cfg
}

// Global sandbox instance (disabled by default).
var globalSandbox = &Sandbox{enabled: false}

// Init enables the global sandbox with the given configuration.
func Init(cfg *Config) error {
	if cfg == nil {
		return ErrNotInitialized
	}

	globalSandbox.mu.Lock()
	defer globalSandbox.mu.Unlock()

	globalSandbox.roots = nil
	globalSandbox.enabled = true

	if cfg.AllowCwd {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		globalSandbox.roots = append(globalSandbox.roots, cwd)
	}

	for _, p := range cfg.AllowedPaths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		globalSandbox.roots = append(globalSandbox.roots, absPath)
	}

	return nil
}

// Disable disables the sandbox (allows all reads).
func Disable() {
	globalSandbox.mu.Lock()
	defer globalSandbox.mu.Unlock()
	globalSandbox.enabled = false
}

// IsEnabled returns whether the sandbox is enabled.
func IsEnabled() bool {
	globalSandbox.mu.RLock()
	defer globalSandbox.mu.RUnlock()
	return globalSandbox.enabled
}

// checkAccess verifies that path lies under one of the allowed roots.
func checkAccess(path string) error {
	globalSandbox.mu.RLock()
	defer globalSandbox.mu.RUnlock()

	if !globalSandbox.enabled {
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return ErrAccessDenied
	}
	// Abs cleans the path, so ".." segments cannot escape a root.
	for _, root := range globalSandbox.roots {
		if within(absPath, root) {
			return nil
		}
	}
	return ErrAccessDenied
}

func within(path, root string) bool {
	if path == root {
		return true
	}
	if !strings.HasPrefix(path, root) {
		return false
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return true
	}
	return strings.HasPrefix(path[len(root):], string(filepath.Separator))
}

// Stat returns file info within the sandbox.
func Stat(path string) (os.FileInfo, error) {
	if err := checkAccess(path); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

// ReadDir reads a directory within the sandbox.
func ReadDir(path string) ([]fs.DirEntry, error) {
	if err := checkAccess(path); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}
