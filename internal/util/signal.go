package util

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

// SignalContext lives until SIGINT or SIGTERM. The returned stop releases the
// signal handler.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// PartSuffix marks a download that has not finished yet.
const PartSuffix = ".part"

// CleanupPartials removes leftover *.part files under dir and returns how many
// were removed.
func CleanupPartials(dir string) int {
	removed := 0
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), PartSuffix) {
			if os.Remove(path) == nil {
				removed++
			}
		}
		return nil
	})
	return removed
}

func RemoveIfEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false
	}
	return os.Remove(dir) == nil
}
