package portal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	cdpbrowser "github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/network"
	cdppage "github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeLauncher runs a local Chrome through chromedp.
type ChromeLauncher struct {
	Logf func(format string, args ...any)
}

func (l ChromeLauncher) Launch(ctx context.Context, opts LaunchOptions) (Browser, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)

	var ctxOpts []chromedp.ContextOption
	if l.Logf != nil {
		ctxOpts = append(ctxOpts, chromedp.WithLogf(l.Logf))
	}
	browserCtx, browserCancel := chromedp.NewContext(allocCtx, ctxOpts...)

	// the first Run starts the browser process
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, err
	}

	return &chromeBrowser{
		ctx:         browserCtx,
		cancel:      browserCancel,
		allocCancel: allocCancel,
		downloadDir: opts.DownloadDir,
	}, nil
}

type chromeBrowser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	downloadDir string
	tabCancels  []context.CancelFunc
	opened      bool
}

// NewPage hands out the launch tab first and opens further tabs after that.
func (b *chromeBrowser) NewPage(ctx context.Context) (Page, error) {
	tabCtx := b.ctx
	if b.opened {
		var cancel context.CancelFunc
		tabCtx, cancel = chromedp.NewContext(b.ctx)
		b.tabCancels = append(b.tabCancels, cancel)
		if err := chromedp.Run(tabCtx); err != nil {
			return nil, fmt.Errorf("open tab: %w", err)
		}
	}
	b.opened = true

	p := &chromePage{ctx: tabCtx}

	behavior := cdpbrowser.SetDownloadBehavior(cdpbrowser.SetDownloadBehaviorBehaviorAllowAndName).
		WithEventsEnabled(true)
	if b.downloadDir != "" {
		behavior = behavior.WithDownloadPath(b.downloadDir)
	}
	if err := p.run(ctx, behavior); err != nil {
		return nil, fmt.Errorf("enable downloads: %w", err)
	}

	return p, nil
}

// Close shuts the browser down and waits for the process to exit.
func (b *chromeBrowser) Close() error {
	for _, cancel := range b.tabCancels {
		cancel()
	}

	err := chromedp.Cancel(b.ctx)
	b.cancel()
	b.allocCancel()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type chromePage struct {
	ctx context.Context
}

// run executes actions on the tab while honouring the caller's ctx.
func (p *chromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(p.ctx)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	return err
}

func (p *chromePage) Goto(ctx context.Context, target string) error {
	return p.run(ctx, chromedp.Navigate(target))
}

func (p *chromePage) Click(ctx context.Context, sel string) error {
	return p.run(ctx, chromedp.Click(sel, chromedp.ByQuery))
}

func (p *chromePage) Type(ctx context.Context, sel, text string) error {
	return p.run(ctx, chromedp.SendKeys(sel, text, chromedp.ByQuery))
}

func (p *chromePage) Document(ctx context.Context) (*goquery.Document, error) {
	var html, location string
	err := p.run(ctx,
		chromedp.Location(&location),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	if u, err := url.Parse(location); err == nil {
		doc.Url = u
	}

	return doc, nil
}

func (p *chromePage) ExpectNavigation(_ context.Context) NavigationSignal {
	listenCtx, cancel := context.WithCancel(p.ctx)
	sig := &loadSignal{
		fired:  make(chan struct{}, 1),
		cancel: cancel,
	}

	chromedp.ListenTarget(listenCtx, func(ev any) {
		if _, ok := ev.(*cdppage.EventLoadEventFired); ok {
			select {
			case sig.fired <- struct{}{}:
			default:
			}
		}
	})

	return sig
}

func (p *chromePage) Cookies(ctx context.Context) ([]*http.Cookie, error) {
	var cookies []*network.Cookie
	err := p.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		cookies, err = network.GetCookies().Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}

	out := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   c.Secure,
			HttpOnly: c.HTTPOnly,
		})
	}

	return out, nil
}

type loadSignal struct {
	fired  chan struct{}
	cancel context.CancelFunc
}

func (s *loadSignal) Wait(ctx context.Context) error {
	select {
	case <-s.fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *loadSignal) Stop() {
	s.cancel()
}
