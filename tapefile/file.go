package tapefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/bp/logs"
	"gopkg.in/yaml.v3"
)

var ErrLocked = errors.New("tape file is locked")

// File stores a Record as JSON, or as YAML for .yaml and .yml paths.
type File struct {
	Path   string
	Logger logs.Logger
}

func (f *File) isYAML() bool {
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Lock takes the lock file next to Path. The lock is held until unlock is
// called; a stale lock from a crashed process must be removed by hand.
func (f *File) Lock() (unlock func(), err error) {
	lockFile := f.Path + ".lock"
	file, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, lockFile)
		}
		return nil, err
	}
	file.Close()
	return func() {
		if err := os.Remove(lockFile); err != nil && f.Logger != nil {
			f.Logger.Warn("remove lock file", "path", lockFile, "error", err)
		}
	}, nil
}

// Load reads the record. A missing file yields an error matching
// os.ErrNotExist.
func (f *File) Load() (*Record, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	var record Record
	if f.isYAML() {
		err = yaml.Unmarshal(data, &record)
	} else {
		err = json.Unmarshal(data, &record)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	if f.Logger != nil {
		f.Logger.Debug("tape loaded",
			"path", f.Path,
			"cells", len(record.State.Cells),
			"runs", len(record.Runs),
		)
	}
	return &record, nil
}

// Save writes the record atomically.
func (f *File) Save(record *Record) error {
	record.prune()

	var data []byte
	var err error
	if f.isYAML() {
		data, err = yaml.Marshal(record)
	} else {
		data, err = json.MarshalIndent(record, "", "  ")
	}
	if err != nil {
		return err
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return err
	}
	if f.Logger != nil {
		f.Logger.Debug("tape saved",
			"path", f.Path,
			"runs", len(record.Runs),
		)
	}
	return nil
}

// Update applies fn to the stored record under the lock. A missing file
// starts from an empty record.
func (f *File) Update(fn func(*Record) error) error {
	unlock, err := f.Lock()
	if err != nil {
		return err
	}
	defer unlock()

	record, err := f.Load()
	if errors.Is(err, os.ErrNotExist) {
		record = new(Record)
	} else if err != nil {
		return err
	}
	if err := fn(record); err != nil {
		return err
	}
	return f.Save(record)
}
