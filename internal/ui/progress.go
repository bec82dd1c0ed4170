package ui

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/dhu/internal/util"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress draws one bar per download batch (a course, or the notice list).
type Progress struct {
	p *mpb.Progress
}

func NewProgress() *Progress {
	return newProgress(os.Stderr)
}

func newProgress(w io.Writer) *Progress {
	return &Progress{p: mpb.New(
		mpb.WithWidth(48),
		mpb.WithOutput(w),
		mpb.WithRefreshRate(120*time.Millisecond),
	)}
}

// Wait blocks until every bar has completed and been rendered.
func (pm *Progress) Wait() {
	pm.p.Wait()
}

func (pm *Progress) Register(name string) *Bar {
	b := &Bar{name: name, start: time.Now()}

	b.bar = pm.p.New(
		0,
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(name+"  ", decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit(" %d/%d files", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + util.Human(b.bytes.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				sec := int64(time.Since(b.start).Seconds())
				if b.final.Load() {
					sec = b.elapsed.Load()
				}
				return fmt.Sprintf(" | %ds", sec)
			}),
		),
	)

	return b
}

type Bar struct {
	name string
	bar  *mpb.Bar

	total   atomic.Int64
	bytes   atomic.Int64
	start   time.Time
	elapsed atomic.Int64
	final   atomic.Bool
}

func (b *Bar) Update(done, total int, bytes int64) {
	if b.final.Load() {
		return
	}

	if total > 0 {
		b.total.Store(int64(total))
		b.bar.SetTotal(int64(total), false)
	}

	b.bytes.Store(bytes)
	b.bar.SetCurrent(int64(done))
}

func (b *Bar) MarkDone() {
	if b.final.Swap(true) {
		return
	}

	b.elapsed.Store(int64(time.Since(b.start).Seconds()))
	total := b.total.Load()
	b.bar.SetCurrent(total)
	// completes the bar even for an empty batch
	b.bar.SetTotal(total, true)
}
