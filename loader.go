package tayeb

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadJournal opens and decodes a journal file.
func LoadJournal(path string) (*Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open journal file %q: %w", path, err)
	}
	defer f.Close()

	j, err := DecodeJournal(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode journal file %q: %w", path, err)
	}
	return j, nil
}

// SaveJournal writes the whole journal to a file in canonical form,
// creating parent directories as needed. Used by the fmt command; the
// normal write path is AppendCommand.
func SaveJournal(path string, j *Journal) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for journal %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening journal file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeJournal(f, j)
}

// AppendCommand appends a single already-applied command to the journal
// file, creating the file if it does not exist.
func AppendCommand(path string, cmd Command) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening journal file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeCommand(f, cmd)
}
