package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/f2b/internal/core"
)

// ErrNoDataFiles is returned when the data directory cannot be used.
var ErrNoDataFiles = errors.New("storage: unable to find data files")

// Files resolves data and save file locations for one language pairing.
type Files struct {
	DataDir  string
	SaveDir  string
	Language core.Language
	Voice    core.Language
}

// ResolveFiles checks that dataDir exists and creates saveDir if needed.
// A missing or unreadable data directory is fatal for the caller.
func ResolveFiles(dataDir, saveDir string, lang, voice core.Language) (*Files, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if saveDir == "" {
		saveDir = "."
	}
	dataDir = expandHome(dataDir)
	saveDir = expandHome(saveDir)

	info, err := os.Stat(dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoDataFiles, dataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoDataFiles, dataDir)
	}

	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create save directory %s: %w", saveDir, err)
	}

	return &Files{
		DataDir:  dataDir,
		SaveDir:  saveDir,
		Language: lang,
		Voice:    voice,
	}, nil
}

// DataPath returns the path of a data file. Names are matched case
// insensitively; the first directory entry that matches wins.
func (f *Files) DataPath(name string) (string, bool) {
	return lookup(f.DataDir, name)
}

// TextPath returns the path of a text file for the configured language,
// looked up under "<LANG>/" and then the data root.
func (f *Files) TextPath(name string) (string, bool) {
	if p, ok := lookup(filepath.Join(f.DataDir, f.Language.String()), name); ok {
		return p, true
	}
	return lookup(f.DataDir, name)
}

// VoicePath returns the path of a voice file for the configured voice
// language, looked up under "VOICE/<LANG>/".
func (f *Files) VoicePath(name string) (string, bool) {
	return lookup(filepath.Join(f.DataDir, "VOICE", f.Voice.String()), name)
}

// SavePath returns the path of a file in the save directory.
func (f *Files) SavePath(name string) string {
	return filepath.Join(f.SaveDir, name)
}

func lookup(dir, name string) (string, bool) {
	p := filepath.Join(dir, name)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), name) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
