package portal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForNavigationSeesNewDocument(t *testing.T) {
	p := homePage(t)

	err := WaitForNavigation(context.Background(), p, func(ctx context.Context) error {
		return p.Click(ctx, NavAttendanceLink)
	})
	require.NoError(t, err)
	assert.True(t, p.armed.stopped)

	doc, err := p.Document(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find(AttendanceRows).Length())
}

func TestWaitForNavigationTimeout(t *testing.T) {
	p := homePage(t)
	p.stall = true

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := WaitForNavigation(ctx, p, func(ctx context.Context) error {
		return p.Click(ctx, NavAttendanceLink)
	})
	require.ErrorIs(t, err, ErrNavigationTimeout)
}

func TestWaitForNavigationActionError(t *testing.T) {
	p := homePage(t)

	err := WaitForNavigation(context.Background(), p, func(ctx context.Context) error {
		return p.Click(ctx, "#missing")
	})
	require.ErrorIs(t, err, ErrElementNotFound)
	assert.False(t, errors.Is(err, ErrNavigationTimeout))
	assert.True(t, p.armed.stopped)
}

func TestWaitForNavigationCancelled(t *testing.T) {
	p := homePage(t)
	p.stall = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WaitForNavigation(ctx, p, func(ctx context.Context) error {
		return p.Click(ctx, NavAttendanceLink)
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrNavigationTimeout))
}

func TestClickThroughOrder(t *testing.T) {
	p := homePage(t)

	require.NoError(t, clickThrough(NavGrades, NavGradesLink)(context.Background(), p))
	assert.Equal(t, []string{NavGrades, NavGradesLink}, p.clicks)
	assert.Equal(t, "grades", p.current)
}
