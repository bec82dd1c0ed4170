package ui

import "sync/atomic"

type Stats struct {
	TotalFiles   atomic.Int64
	TotalBytes   atomic.Int64
	SkippedFiles atomic.Int64
	FailedFiles  atomic.Int64
}
