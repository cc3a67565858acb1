package wallet

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store persists the player's wallet between sessions.
// The file holds two newline-separated integers: the balance, then the high
// score. The store is a collaborator of the game engine; the engine itself
// never touches the filesystem.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted balance and high score.
// The caller decides what to do when the file does not exist yet.
func (s *Store) Load() (balance, highScore int, err error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return 0, 0, err
	}

	lines := strings.SplitN(strings.TrimSpace(string(b)), "\n", 2)
	if len(lines) != 2 {
		return 0, 0, fmt.Errorf("malformed wallet file: %s", s.path)
	}

	balance, err = strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed balance in wallet file: %w", err)
	}

	highScore, err = strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed high score in wallet file: %w", err)
	}

	if balance < 0 || highScore < 0 {
		return 0, 0, fmt.Errorf("wallet file contains negative values: %s", s.path)
	}

	return balance, highScore, nil
}

// Save writes the balance and high score
func (s *Store) Save(balance, highScore int) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(s.path, []byte(fmt.Sprintf("%d\n%d", balance, highScore)), 0644)
}
