package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileKeeper keeps a single high score as a decimal integer in a text file.
type FileKeeper struct {
	Path string
}

// NewFileKeeper returns a keeper for path; a leading ~ is expanded.
func NewFileKeeper(path string) (*FileKeeper, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return &FileKeeper{Path: expanded}, nil
}

// LoadHighScore reads the stored score. A missing, malformed or negative
// value reads as 0.
func (k *FileKeeper) LoadHighScore() int {
	data, err := os.ReadFile(k.Path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// SaveHighScore replaces the stored score. The file is written to a
// temporary sibling and renamed so a crash never leaves a partial value.
func (k *FileKeeper) SaveHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}

	dir := filepath.Dir(k.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmpName, k.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", k.Path, err)
	}
	return nil
}
