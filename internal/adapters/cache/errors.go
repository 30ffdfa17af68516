package cache

import "errors"

// Sentinel kinds for pattern cache errors.
var (
	// ErrStale marks a cache file computed for different word lists.
	ErrStale = errors.New("pattern cache built for different word lists")
)
