//go:build !windows

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// terminalWidths reports the current width of fd, then again on every
// SIGWINCH. The channel closes when ctx is done.
func terminalWidths(ctx context.Context, fd int) <-chan int {
	out := make(chan int)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGWINCH)

	go func() {
		defer close(out)
		defer signal.Stop(sigs)

		for {
			if width, _, err := term.GetSize(fd); err == nil {
				select {
				case out <- width:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-ctx.Done():
				return
			case <-sigs:
			}
		}
	}()

	return out
}
