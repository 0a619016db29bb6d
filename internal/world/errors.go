package world

import "errors"

var (
	// ErrGenerationExhausted is returned when rooms cannot be placed within
	// the attempt budget, even at the minimum room size.
	ErrGenerationExhausted = errors.New("room placement exhausted")

	// ErrPartialConnectivity reports that at least one corridor could not be
	// routed. The level is still usable.
	ErrPartialConnectivity = errors.New("partial connectivity")
)
