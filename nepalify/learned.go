package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

// LearnedStore reads a mapping of Roman keys to Devanagari names
// harvested from a real voter dataset. The resource file is optional
// and read at most once per store; a missing or malformed file
// degrades to an empty mapping.
type LearnedStore struct {
	paths  []string
	logger *slog.Logger

	once  sync.Once
	names map[string]string
}

// NewLearnedStore makes a store looking up the given candidate paths
// in order, first existing file wins. With no paths the default
// resource name is tried relative to the working directory, the
// executable directory and the process cwd.
func NewLearnedStore(logger *slog.Logger, paths ...string) *LearnedStore {
	if logger == nil {
		logger = slog.Default()
	}
	if len(paths) == 0 {
		paths = defaultLearnedPaths()
	}
	return &LearnedStore{paths: paths, logger: logger}
}

func defaultLearnedPaths() []string {
	paths := []string{DefaultLearnedNamesFile}

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), DefaultLearnedNamesFile))
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, DefaultLearnedNamesFile))
	}
	return paths
}

// Names returns the learned mapping, loading it on first call.
// The load happens exactly once even when it fails, so a missing
// file is not re-stat'ed on every keystroke.
func (s *LearnedStore) Names() map[string]string {
	s.once.Do(s.load)
	return s.names
}

// Lookup finds the Devanagari form for a trimmed, lower-cased Roman key.
func (s *LearnedStore) Lookup(key string) (string, bool) {
	value, ok := s.Names()[key]
	return value, ok
}

func (s *LearnedStore) load() {
	s.names = map[string]string{}

	var path string
	for _, candidate := range s.paths {
		if fileExists(candidate) {
			path = candidate
			break
		}
	}
	if path == "" {
		s.logger.Info("learned names resource not found", "candidates", s.paths)
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("could not read learned names resource", "path", path, "error", err)
		return
	}

	var raw map[string]string
	if err := sonic.Unmarshal(content, &raw); err != nil {
		s.logger.Warn("malformed learned names resource", "path", path, "error", err)
		return
	}

	// The resource may mix scripts; only Roman keys are usable
	for key, value := range raw {
		if IsDevanagari(key) {
			continue
		}
		s.names[strings.ToLower(strings.TrimSpace(key))] = value
	}

	s.logger.Info("loaded learned names", "path", path, "count", len(s.names))
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
