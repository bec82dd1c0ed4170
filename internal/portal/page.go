package portal

import (
	"context"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

// LaunchOptions configure the browser process.
type LaunchOptions struct {
	Headless    bool
	DownloadDir string
}

// Launcher starts an isolated browser process.
type Launcher interface {
	Launch(ctx context.Context, opts LaunchOptions) (Browser, error)
}

// Browser is a running browser process.
type Browser interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Page is the automation surface used by login and the extraction routines.
// Selectors are CSS queries from the locator table.
type Page interface {
	Goto(ctx context.Context, url string) error
	Click(ctx context.Context, sel string) error
	Type(ctx context.Context, sel, text string) error

	// Document snapshots the current DOM. The returned document's Url is the
	// page location so relative links can be resolved.
	Document(ctx context.Context) (*goquery.Document, error)

	// ExpectNavigation starts listening for the next full page load.
	ExpectNavigation(ctx context.Context) NavigationSignal

	Cookies(ctx context.Context) ([]*http.Cookie, error)
}

// NavigationSignal fires once the page has finished loading a new document.
type NavigationSignal interface {
	Wait(ctx context.Context) error
	Stop()
}
