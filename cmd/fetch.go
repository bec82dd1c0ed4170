package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/brogergvhs/dhu/internal/downloader"
	"github.com/brogergvhs/dhu/internal/portal"
	"github.com/brogergvhs/dhu/internal/ui"
	"github.com/brogergvhs/dhu/internal/util"
)

// batch is one progress bar worth of attachments.
type batch struct {
	name string
	jobs []downloader.Job
}

func materialBatches(root string, courses []portal.CourseMaterials) []batch {
	var out []batch
	for _, c := range courses {
		dir := filepath.Join(root, util.SanitizeFilename(c.Course))
		b := batch{name: c.Course}
		for _, m := range c.Materials {
			for _, a := range m.Attachments {
				b.jobs = append(b.jobs, downloader.Job{
					URL:  a.URL,
					Path: filepath.Join(dir, util.AttachmentName(a.Name, a.URL)),
				})
			}
		}
		if len(b.jobs) > 0 {
			b.jobs = downloader.UniqueJobs(b.jobs)
			out = append(out, b)
		}
	}
	return out
}

func noticeBatch(root string, notices []portal.Notice) []batch {
	b := batch{name: "Notices"}
	dir := filepath.Join(root, "notices")
	for _, n := range notices {
		for _, a := range n.Attachments {
			b.jobs = append(b.jobs, downloader.Job{
				URL:  a.URL,
				Path: filepath.Join(dir, util.AttachmentName(a.Name, a.URL)),
			})
		}
	}
	if len(b.jobs) == 0 {
		return nil
	}
	b.jobs = downloader.UniqueJobs(b.jobs)
	return []batch{b}
}

// fetch downloads batches with the cookies of the logged-in page, so it has to
// run while the session is still open.
func fetch(ctx context.Context, e *env, p portal.Page, root string, batches []batch) error {
	if len(batches) == 0 {
		fmt.Println("Nothing to download.")
		return nil
	}

	cookies, err := p.Cookies(ctx)
	if err != nil {
		return fmt.Errorf("read session cookies: %w", err)
	}

	client := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     2 * time.Minute,
		Cookies:     cookies,
		CookieURL:   e.cfg.PortalURL,
		DebugLogger: e.log,
	})

	stats := &ui.Stats{}
	dl := downloader.New(client, stats)
	progress := ui.NewProgress()
	start := time.Now()

	var errs []error
	for _, b := range batches {
		bar := progress.Register(b.name)
		if err := dl.DownloadAll(ctx, b.jobs, e.cfg.DownloadWorkers, bar); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
		if ctx.Err() != nil {
			break
		}
	}
	progress.Wait()

	if ctx.Err() != nil {
		if n := util.CleanupPartials(root); n > 0 {
			e.log.Debugf("removed %d unfinished files", n)
		}
		util.RemoveIfEmpty(root)
	}

	fmt.Println()
	fmt.Println("Download Summary:")
	fmt.Printf("Files:    %d\n", stats.TotalFiles.Load())
	fmt.Printf("Skipped:  %d\n", stats.SkippedFiles.Load())
	fmt.Printf("Failed:   %d\n", stats.FailedFiles.Load())
	fmt.Printf("Data:     %s\n", util.Human(stats.TotalBytes.Load()))
	fmt.Printf("Time:     %s\n", time.Since(start).Round(time.Second))
	fmt.Printf("Saved to: %s\n", root)

	return errors.Join(errs...)
}
