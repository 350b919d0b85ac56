package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
)

// runPlain writes one line per tick until ctx is cancelled. It is used when
// stdout is not a terminal or --plain is set.
func runPlain(ctx context.Context, w io.Writer, flags DisplayFlags, interval time.Duration, clock clockwork.Clock) error {
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	blink := true
	emit := func() error {
		r := Format(clock.Now(), flags, blink)
		if _, err := fmt.Fprintln(w, r.Plain(flags)); err != nil {
			return fmt.Errorf("write reading: %w", err)
		}
		return nil
	}

	if err := emit(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			log.Printf("plain output stopped: %v", ctx.Err())
			return nil
		case <-ticker.Chan():
			blink = !blink
			if err := emit(); err != nil {
				return err
			}
		}
	}
}
