package screen

import "log/slog"

// DefaultListLimit is used when the platform cannot report a list limit.
const DefaultListLimit = 6

// ListKind identifies the kind of content a limit applies to.
type ListKind int

const (
	ListKindList ListKind = iota
)

// ContentLimiter reports how many items the platform allows for a kind of list.
type ContentLimiter interface {
	ContentLimit(kind ListKind) (int, error)
}

// FixedLimit is a ContentLimiter with a constant answer.
type FixedLimit int

// ContentLimit implements ContentLimiter.
func (f FixedLimit) ContentLimit(ListKind) (int, error) {
	return int(f), nil
}

// MaxListItems asks the limiter for the limit of the given kind of list,
// substituting DefaultListLimit when the limiter is missing, fails or answers
// with a non-positive number.
func MaxListItems(limiter ContentLimiter, kind ListKind, logger *slog.Logger) int {
	if limiter == nil {
		return DefaultListLimit
	}
	if logger == nil {
		logger = discardLogger()
	}

	n, err := limiter.ContentLimit(kind)
	if err != nil {
		logger.Warn("content limit unavailable, using default",
			slog.Int("default", DefaultListLimit), slog.Any("err", err))
		return DefaultListLimit
	}
	if n <= 0 {
		logger.Warn("content limit not positive, using default",
			slog.Int("reported", n), slog.Int("default", DefaultListLimit))
		return DefaultListLimit
	}
	return n
}
