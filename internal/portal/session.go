package portal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// Credentials are the portal login pair.
type Credentials struct {
	ID       string
	Password string
}

// CredentialStore supplies the saved login and forgets it once the portal
// rejects it.
type CredentialStore interface {
	Load() (Credentials, error)
	Purge() error
}

type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Errorf(string, ...any) {}

type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
	StateRejected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateRejected:
		return "rejected"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Session is one browser process and its authenticated page. It belongs to a
// single WithSession scope and must not be kept after the scope returns.
type Session struct {
	Page    Page
	Browser Browser

	mu    sync.Mutex
	state State
	log   Logger

	closeOnce sync.Once
	closeErr  error
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	prev := s.state
	s.state = st
	s.mu.Unlock()

	s.log.Debugf("session %s -> %s\n", prev, st)
}

// Close terminates the browser process. Later calls return the first result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.Browser != nil {
			s.closeErr = s.Browser.Close()
		}
		if s.State() != StateRejected {
			s.setState(StateClosed)
		}
	})

	return s.closeErr
}

// Manager logs in to the portal and scopes browser sessions.
type Manager struct {
	launcher Launcher
	store    CredentialStore
	log      Logger
	entryURL string
}

func NewManager(launcher Launcher, store CredentialStore, log Logger, entryURL string) *Manager {
	if entryURL == "" {
		entryURL = EntryURL
	}
	if log == nil {
		log = nopLogger{}
	}

	return &Manager{
		launcher: launcher,
		store:    store,
		log:      log,
		entryURL: entryURL,
	}
}

// Login launches a browser and signs in with the stored credentials. When the
// portal shows its error element the credentials are purged, the browser is
// closed and a *LoginRejectedError is returned.
func (m *Manager) Login(ctx context.Context, opts LaunchOptions) (*Session, error) {
	creds, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	s := &Session{state: StateUnauthenticated, log: m.log}

	b, err := m.launcher.Launch(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	s.Browser = b

	p, err := b.NewPage(ctx)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}
	s.Page = p

	s.setState(StateAuthenticating)

	doc, err := m.submitLogin(ctx, p, creds)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("login: %w", err)
	}

	if msg, rejected := loginError(doc); rejected {
		s.setState(StateRejected)
		m.log.Errorf("%s\n", msg)

		if perr := m.store.Purge(); perr != nil {
			m.log.Errorf("failed to remove saved login info: %v\n", perr)
		}
		if cerr := s.Close(); cerr != nil {
			m.log.Debugf("close after rejected login: %v\n", cerr)
		}

		return nil, &LoginRejectedError{Message: msg}
	}

	s.setState(StateAuthenticated)
	return s, nil
}

func (m *Manager) submitLogin(ctx context.Context, p Page, creds Credentials) (*goquery.Document, error) {
	if err := p.Goto(ctx, m.entryURL); err != nil {
		return nil, err
	}
	if err := p.Type(ctx, LoginID, creds.ID); err != nil {
		return nil, err
	}
	if err := p.Type(ctx, LoginPassword, creds.Password); err != nil {
		return nil, err
	}

	err := WaitForNavigation(ctx, p, func(ctx context.Context) error {
		return p.Click(ctx, LoginSubmit)
	})
	if err != nil {
		return nil, err
	}

	return p.Document(ctx)
}

func loginError(doc *goquery.Document) (string, bool) {
	sel := doc.Find(LoginError).First()
	if sel.Length() == 0 {
		return "", false
	}

	msg := strings.TrimSpace(sel.Text())
	if msg == "" {
		msg = "the portal rejected the saved login info"
	}

	return msg, true
}

// WithSession logs in, runs work against the session and closes the browser
// on every exit path, including a failing or panicking work.
func WithSession[T any](ctx context.Context, m *Manager, opts LaunchOptions, work func(ctx context.Context, s *Session) (T, error)) (result T, err error) {
	s, err := m.Login(ctx, opts)
	if err != nil {
		return result, err
	}

	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close browser: %w", cerr)
		}
	}()

	if s.State() != StateAuthenticated {
		return result, ErrNotAuthenticated
	}

	return work(ctx, s)
}

func WithPage[T any](ctx context.Context, m *Manager, opts LaunchOptions, work func(ctx context.Context, p Page) (T, error)) (T, error) {
	return WithSession(ctx, m, opts, func(ctx context.Context, s *Session) (T, error) {
		return work(ctx, s.Page)
	})
}

func WithBrowser[T any](ctx context.Context, m *Manager, opts LaunchOptions, work func(ctx context.Context, b Browser) (T, error)) (T, error) {
	return WithSession(ctx, m, opts, func(ctx context.Context, s *Session) (T, error) {
		return work(ctx, s.Browser)
	})
}
