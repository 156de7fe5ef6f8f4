package model

import (
	"crypto/md5"
	"fmt"
)

const historySize = 5

// GetWorldHash returns an MD5 hash of the current snapshot
func (w *World) GetWorldHash() string {
	return fmt.Sprintf("%x", md5.Sum([]byte(w.Snapshot())))
}

// UpdateHistory adds current state to history and maintains size
func (w *World) UpdateHistory() {
	w.history = append(w.history, w.GetWorldHash())

	// Keep only the last few states to detect cycles
	if len(w.history) > historySize {
		w.history = w.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last three
// recorded states. Growth changes the snapshot, so a pattern only counts as
// stagnant once the extent has settled too.
func (w *World) IsStagnant() bool {
	if len(w.history) < 3 {
		return false
	}

	currentHash := w.GetWorldHash()
	for _, h := range w.history[len(w.history)-3:] {
		if h == currentHash {
			return true
		}
	}
	return false
}
