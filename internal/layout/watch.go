package layout

import "context"

// Watch converts a stream of logical widths into a stream of compositions,
// emitting only when the composition changes (including the first width).
// The output channel closes when ctx is done or widths is closed. Calling
// Watch again starts a fresh sequence.
func Watch(ctx context.Context, widths <-chan int, compose func(int) Composition) <-chan Composition {
	if compose == nil {
		compose = Select
	}
	out := make(chan Composition)

	go func() {
		defer close(out)

		var current Composition
		seen := false
		for {
			select {
			case <-ctx.Done():
				return
			case width, ok := <-widths:
				if !ok {
					return
				}
				next := compose(width)
				if seen && next == current {
					continue
				}
				current, seen = next, true
				select {
				case out <- next:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
