package gui

import (
	"encoding/json"
	"fmt"
	"os"
)

const defaultWordListFile = "word-lantern-words.json"

type wordListFile struct {
	FormatVersion int      `json:"format_version"`
	Words         []string `json:"words,omitempty"`
}

// loadWordList reads an optional user word-list file. A missing file is not
// an error; the built-in list is always available.
func loadWordList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var lib wordListFile
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	return lib.Words, nil
}
