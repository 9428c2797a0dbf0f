package queries

import "context"

// SetBetweenReads swaps the hook run between the header and line reads and
// returns a func restoring the previous one.
func SetBetweenReads(f func(context.Context)) (restore func()) {
	prev := betweenReads
	betweenReads = f
	return func() { betweenReads = prev }
}
