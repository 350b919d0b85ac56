package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineWriter hands every written line to the test.
type lineWriter chan string

func (w lineWriter) Write(p []byte) (int, error) {
	w <- strings.TrimRight(string(p), "\n")
	return len(p), nil
}

// runPlainTicks runs plain output on a fake clock for ticks ticks and
// returns every line written, including the initial one.
func runPlainTicks(t *testing.T, flags DisplayFlags, ticks int) []string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock := clockwork.NewFakeClockAt(at(9, 5))
	w := make(lineWriter, ticks+1)
	done := make(chan error, 1)
	go func() { done <- runPlain(ctx, w, flags, time.Second, clock) }()

	var lines []string
	next := func() {
		select {
		case l := <-w:
			lines = append(lines, l)
		case <-ctx.Done():
			t.Fatalf("timed out after %d lines", len(lines))
		}
	}

	next()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	for i := 0; i < ticks; i++ {
		clock.Advance(time.Second)
		next()
	}

	cancel()
	require.NoError(t, <-done)
	return lines
}

func TestRunPlain_BlinksEachTick(t *testing.T) {
	lines := runPlainTicks(t, DisplayFlags{ShowDayMonth: true}, 2)
	require.Len(t, lines, 3)
	assert.Equal(t, " 9:05 AM  Thu, Oct 15", lines[0])
	assert.Equal(t, " 9 05 AM  Thu, Oct 15", lines[1])
	assert.Equal(t, " 9:05 AM  Thu, Oct 15", lines[2])
}

func TestRunPlain_FollowsTheClock(t *testing.T) {
	lines := runPlainTicks(t, DisplayFlags{Is24Hour: true}, 60)
	require.Len(t, lines, 61)
	assert.Equal(t, "09:05", lines[0])
	assert.Equal(t, "09 05", lines[59])
	assert.Equal(t, "09:06", lines[60])
}

func TestRunPlain_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b strings.Builder
	err := runPlain(ctx, &b, DisplayFlags{Is24Hour: true}, time.Second, clockwork.NewFakeClockAt(at(13, 0)))
	require.NoError(t, err)
	assert.Equal(t, "13:00\n", b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunPlain_WriteError(t *testing.T) {
	err := runPlain(context.Background(), failingWriter{}, DisplayFlags{}, time.Second, clockwork.NewFakeClock())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write reading")
	assert.Contains(t, err.Error(), "disk full")
}
