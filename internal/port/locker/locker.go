package locker

import "context"

// AdvisoryLocker serialises named critical sections across every process
// sharing the store. Queue drains and rebalance sweeps each run under their
// own section name.
type AdvisoryLocker interface {
	WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error
}
