// Package hints persists small cross-invocation hints for the client, in a
// JSON state file. The one hint today is editRecordId: the report list view
// sets it before handing over to the form view, instructing the form to
// auto-open the edit flow for that record once the list has loaded. The hint
// is consumed read-then-clear, exactly once per load.
package hints

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

type state struct {
	EditRecordID string `json:"editRecordId,omitempty"`
}

// File is a hint store backed by a single JSON file.
type File struct {
	path string
}

func New(path string) *File {
	return &File{path: path}
}

// DefaultPath places the state file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qprdesk", "state.json"), nil
}

// SetEditRecordID stores the auto-open hint for the given record.
func (f *File) SetEditRecordID(id int64) error {
	s, err := f.read()
	if err != nil {
		return err
	}
	s.EditRecordID = strconv.FormatInt(id, 10)
	return f.write(s)
}

// TakeEditRecordID returns the pending hint, if any, and clears it so a
// subsequent load does not repeat the auto-open. A malformed stored value is
// cleared and reported as absent.
func (f *File) TakeEditRecordID() (int64, bool, error) {
	s, err := f.read()
	if err != nil {
		return 0, false, err
	}
	if s.EditRecordID == "" {
		return 0, false, nil
	}

	raw := s.EditRecordID
	s.EditRecordID = ""
	if err := f.write(s); err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return id, true, nil
}

func (f *File) read() (state, error) {
	var s state
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt state file is discarded rather than wedging every load.
		return state{}, nil
	}
	return s, nil
}

func (f *File) write(s state) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}
