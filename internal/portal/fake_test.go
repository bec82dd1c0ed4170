package portal

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const fakeBase = "https://portal.test/uprx/"

// fakePage serves testdata screens. Clicking a selector listed in links moves
// to the linked screen and fires the armed navigation signal; an empty target
// only expands a menu and "." reloads the current screen.
type fakePage struct {
	screens map[string]string
	current string
	links   map[string]string
	stall   bool

	typed   map[string]string
	clicks  []string
	visited []string
	armed   *fakeSignal
	cookies []*http.Cookie
}

func newFakePage(t *testing.T, links map[string]string) *fakePage {
	t.Helper()

	screens := map[string]string{}
	for _, name := range []string{"login", "login_rejected", "home", "attendance", "grades", "tasks", "materials", "info", "info_detail", "attend", "attend_done", "attend_rejected"} {
		b, err := os.ReadFile(filepath.Join("testdata", name+".html"))
		require.NoError(t, err)
		screens[name] = string(b)
	}

	all := map[string]string{
		LoginSubmit:         "home",
		NavAttendance:       "",
		NavAttendanceLink:   "attendance",
		NavGrades:           "",
		NavGradesLink:       "grades",
		NavClassProfile:     "",
		NavClassProfileLink: "tasks",
		NavMaterialsLink:    "materials",
		NavInfo:             "",
		NavInfoLink:         "info",
		InfoShowAll:         "info",
		InfoBack:            "info",
		noticeLink(1):       "info_detail",
		noticeLink(2):       "info_detail",
		NavHome:             "home",
		NavAttendRegister:   "attend",
		AttendSubmit:        "attend_done",
	}
	for q := Quarter(1); q <= 4; q++ {
		all[q.tab()] = "."
	}
	for k, v := range links {
		all[k] = v
	}

	return &fakePage{
		screens: screens,
		links:   all,
		typed:   map[string]string{},
	}
}

func (p *fakePage) Goto(_ context.Context, target string) error {
	p.visited = append(p.visited, target)
	p.current = "login"
	return nil
}

func (p *fakePage) Click(_ context.Context, sel string) error {
	next, ok := p.links[sel]
	if !ok {
		return fmt.Errorf("%w: %s", ErrElementNotFound, sel)
	}
	p.clicks = append(p.clicks, sel)

	if next == "" {
		return nil
	}
	if next != "." {
		p.current = next
	}

	if p.armed != nil && !p.stall {
		p.armed.fire()
	}
	return nil
}

func (p *fakePage) Type(_ context.Context, sel, text string) error {
	p.typed[sel] = text
	return nil
}

func (p *fakePage) Document(_ context.Context) (*goquery.Document, error) {
	html, ok := p.screens[p.current]
	if !ok {
		return nil, fmt.Errorf("no screen %q", p.current)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	doc.Url, _ = url.Parse(fakeBase + p.current)

	return doc, nil
}

func (p *fakePage) ExpectNavigation(_ context.Context) NavigationSignal {
	p.armed = &fakeSignal{fired: make(chan struct{}, 1)}
	return p.armed
}

func (p *fakePage) Cookies(_ context.Context) ([]*http.Cookie, error) {
	return p.cookies, nil
}

type fakeSignal struct {
	fired   chan struct{}
	stopped bool
}

func (s *fakeSignal) fire() {
	select {
	case s.fired <- struct{}{}:
	default:
	}
}

func (s *fakeSignal) Wait(ctx context.Context) error {
	select {
	case <-s.fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *fakeSignal) Stop() {
	s.stopped = true
}

type fakeBrowser struct {
	page     *fakePage
	closed   int
	closeErr error
}

func (b *fakeBrowser) NewPage(_ context.Context) (Page, error) {
	return b.page, nil
}

func (b *fakeBrowser) Close() error {
	b.closed++
	return b.closeErr
}

type fakeLauncher struct {
	browser  *fakeBrowser
	launched int
	opts     LaunchOptions
}

func (l *fakeLauncher) Launch(_ context.Context, opts LaunchOptions) (Browser, error) {
	l.launched++
	l.opts = opts
	return l.browser, nil
}

type fakeStore struct {
	creds   Credentials
	loadErr error
	purged  int
}

func (s *fakeStore) Load() (Credentials, error) {
	return s.creds, s.loadErr
}

func (s *fakeStore) Purge() error {
	s.purged++
	return nil
}

type fakePortal struct {
	page     *fakePage
	browser  *fakeBrowser
	launcher *fakeLauncher
	store    *fakeStore
	manager  *Manager
}

func newFakePortal(t *testing.T, links map[string]string) *fakePortal {
	t.Helper()

	page := newFakePage(t, links)
	browser := &fakeBrowser{page: page}
	launcher := &fakeLauncher{browser: browser}
	store := &fakeStore{creds: Credentials{ID: "s2400001", Password: "hunter2"}}

	return &fakePortal{
		page:     page,
		browser:  browser,
		launcher: launcher,
		store:    store,
		manager:  NewManager(launcher, store, nil, fakeBase),
	}
}

// homePage returns a fake page that is already past the login screen.
func homePage(t *testing.T) *fakePage {
	t.Helper()

	p := newFakePage(t, nil)
	p.current = "home"
	return p
}

func loadDoc(t *testing.T, name string) *goquery.Document {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name+".html"))
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	doc.Url, _ = url.Parse(fakeBase + name)

	return doc
}
