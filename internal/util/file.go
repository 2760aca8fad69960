package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func partialPath(path string) string {
	return path + ".part"
}

// WriteOutput runs write against stdout when path is empty. Otherwise it
// writes a sibling .part file and renames it over path once write succeeds,
// so an interrupted run never leaves a truncated result behind.
func WriteOutput(path string, write func(w io.Writer) error) (err error) {
	if path == "" {
		return write(os.Stdout)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output: %w", err)
		}
	}

	tmp := partialPath(path)
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return os.Rename(tmp, path)
}
