package portal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// NavigationTimeout bounds how long WaitForNavigation waits for the page load.
const NavigationTimeout = 30 * time.Second

// WaitForNavigation runs action and returns once the navigation it caused has
// completed. The listener is armed before the action runs so a fast load is
// never missed. Timeouts are returned as ErrNavigationTimeout and not retried.
func WaitForNavigation(ctx context.Context, p Page, action func(ctx context.Context) error) error {
	nav := p.ExpectNavigation(ctx)
	defer nav.Stop()

	if err := action(ctx); err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, NavigationTimeout)
	defer cancel()

	if err := nav.Wait(waitCtx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrNavigationTimeout, err)
		}
		return err
	}

	return nil
}

// clickThrough opens a menu panel and follows one of its links, waiting for
// the report screen to load.
func clickThrough(menu, link string) func(ctx context.Context, p Page) error {
	return func(ctx context.Context, p Page) error {
		if err := p.Click(ctx, menu); err != nil {
			return err
		}

		return WaitForNavigation(ctx, p, func(ctx context.Context) error {
			return p.Click(ctx, link)
		})
	}
}

// Home returns to the portal's home screen. The main menu is part of every
// screen, so routines can run back to back on one page with Home in between.
func Home(ctx context.Context, p Page) error {
	return WaitForNavigation(ctx, p, func(ctx context.Context) error {
		return p.Click(ctx, NavHome)
	})
}

// Quarter selects a term tab on the report screens that have one. Zero keeps
// the screen's default term.
type Quarter int

func ParseQuarter(s string) (Quarter, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 4 {
		return 0, fmt.Errorf("%w: %q, expected 1-4", ErrInvalidQuarter, s)
	}
	return Quarter(n), nil
}

func (q Quarter) tab() string {
	return fmt.Sprintf("%s:nth-child(%d) > a", QuarterTabs, int(q))
}

// inQuarter wraps a navigation with a switch to quarter q once the report
// screen is open.
func inQuarter(open func(ctx context.Context, p Page) error, q Quarter) func(ctx context.Context, p Page) error {
	return func(ctx context.Context, p Page) error {
		if err := open(ctx, p); err != nil {
			return err
		}
		if q == 0 {
			return nil
		}
		if q < 1 || q > 4 {
			return fmt.Errorf("%w: %d", ErrInvalidQuarter, int(q))
		}

		return WaitForNavigation(ctx, p, func(ctx context.Context) error {
			return p.Click(ctx, q.tab())
		})
	}
}
