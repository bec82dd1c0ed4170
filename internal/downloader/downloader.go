package downloader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/brogergvhs/dhu/internal/ui"
	"github.com/brogergvhs/dhu/internal/util"
)

// Job is one attachment to fetch into Path.
type Job struct {
	URL  string
	Path string
}

// Tracker receives batch progress. ui.Bar satisfies it.
type Tracker interface {
	Update(done, total int, bytes int64)
	MarkDone()
}

type nopTracker struct{}

func (nopTracker) Update(int, int, int64) {}
func (nopTracker) MarkDone()              {}

type Downloader struct {
	client   *http.Client
	attempts int
	backoff  time.Duration
	stats    *ui.Stats
}

func New(c *http.Client, stats *ui.Stats) *Downloader {
	if stats == nil {
		stats = &ui.Stats{}
	}
	return &Downloader{
		client:   c,
		attempts: 3,
		backoff:  time.Second,
		stats:    stats,
	}
}

func (d *Downloader) Stats() *ui.Stats {
	return d.stats
}

type batchState struct {
	mu    sync.Mutex
	done  int
	total int
	bytes int64
	tr    Tracker
}

func (s *batchState) add(files int, bytes int64) {
	s.mu.Lock()
	s.done += files
	s.bytes += bytes
	s.tr.Update(s.done, s.total, s.bytes)
	s.mu.Unlock()
}

// UniqueJobs drops repeated jobs and renames colliding paths to name-1.ext,
// name-2.ext in order of appearance, so a stable job list maps to stable
// file names across runs.
func UniqueJobs(jobs []Job) []Job {
	out := make([]Job, 0, len(jobs))
	seen := make(map[Job]bool, len(jobs))
	taken := make(map[string]bool, len(jobs))

	for _, j := range jobs {
		if seen[j] {
			continue
		}
		seen[j] = true

		path := j.Path
		ext := filepath.Ext(j.Path)
		stem := strings.TrimSuffix(j.Path, ext)
		for n := 1; taken[path]; n++ {
			path = fmt.Sprintf("%s-%d%s", stem, n, ext)
		}
		taken[path] = true

		out = append(out, Job{URL: j.URL, Path: path})
	}

	return out
}

// DownloadAll fetches jobs with up to workers parallel requests. Files that
// already exist are skipped. Individual failures are collected and returned
// joined; the batch keeps going.
func (d *Downloader) DownloadAll(ctx context.Context, jobs []Job, workers int, tr Tracker) error {
	if tr == nil {
		tr = nopTracker{}
	}
	defer tr.MarkDone()

	jobs = UniqueJobs(jobs)

	total := len(jobs)
	if workers < 1 {
		workers = 1
	}
	if workers > total && total > 0 {
		workers = total
	}

	st := &batchState{total: total, tr: tr}
	tr.Update(0, total, 0)

	var errMu sync.Mutex
	var errs []error

	queue := make(chan Job)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for job := range queue {
			if _, err := os.Stat(job.Path); err == nil {
				d.stats.SkippedFiles.Add(1)
				st.add(1, 0)
				continue
			}

			progress := func(delta int64) { st.add(0, delta) }

			n, err := d.downloadWithRetry(ctx, job, progress)
			if err != nil {
				d.stats.FailedFiles.Add(1)
				errMu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(job.Path), err))
				errMu.Unlock()
				st.add(1, 0)
				continue
			}

			d.stats.TotalFiles.Add(1)
			d.stats.TotalBytes.Add(n)
			st.add(1, 0)
		}
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			close(queue)
			wg.Wait()
			return ctx.Err()
		case queue <- job:
		}
	}

	close(queue)
	wg.Wait()

	return errors.Join(errs...)
}

func (d *Downloader) downloadWithRetry(ctx context.Context, job Job, progress func(delta int64)) (int64, error) {
	var err error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		var n int64
		n, err = d.download(ctx, job, progress)
		if err == nil {
			return n, nil
		}
		// undo the bytes reported by the failed attempt
		progress(-n)

		var status statusError
		if errors.As(err, &status) && status.code < 500 {
			return 0, err
		}
		if attempt == d.attempts {
			break
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Duration(attempt) * d.backoff):
		}
	}

	return 0, err
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.code)
}

func (d *Downloader) download(ctx context.Context, job Job, progress func(delta int64)) (written int64, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, job.URL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, statusError{code: resp.StatusCode}
	}

	if err := os.MkdirAll(filepath.Dir(job.Path), 0755); err != nil {
		return 0, err
	}

	part := job.Path + util.PartSuffix
	f, err := os.Create(part)
	if err != nil {
		return 0, err
	}

	written, err = copyWithProgress(f, resp.Body, progress)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(part)
		return written, err
	}

	if err := os.Rename(part, job.Path); err != nil {
		_ = os.Remove(part)
		return written, err
	}

	return written, nil
}
