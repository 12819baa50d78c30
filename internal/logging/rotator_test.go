package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotatorSizeRollover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hookwatch.log")

	cfg := DefaultConfig()
	cfg.FilePath = path
	cfg.MaxSize = 1 // MB
	cfg.Compress = false
	cfg.MaxBackups = 5
	cfg.MaxAge = 7

	r, err := NewFileRotator(cfg)
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("x"), 600*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk) // pushes past MaxSize, forcing a rollover
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotated := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "hookwatch-") {
			rotated++
		}
	}
	require.Equal(t, 1, rotated, "want exactly one rotated file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(len(chunk)), info.Size(),
		"current file should hold only the post-rollover write")
}
