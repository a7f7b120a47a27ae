//go:build windows

package cli

import (
	"context"
	"time"

	"golang.org/x/term"
)

const resizePollInterval = 250 * time.Millisecond

// terminalWidths polls the width of fd. There is no SIGWINCH on Windows.
func terminalWidths(ctx context.Context, fd int) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)
		ticker := time.NewTicker(resizePollInterval)
		defer ticker.Stop()

		last := -1
		for {
			if width, _, err := term.GetSize(fd); err == nil && width != last {
				last = width
				select {
				case out <- width:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}
