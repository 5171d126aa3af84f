package playable

import "time"

// Tickable is an interface that allows a periodic tick to update the table state
type Tickable interface {
	// Delay is how long the wait between each tick should be
	Delay() time.Duration

	// Tick will be called periodically
	// Return true if the dealer should send updated data
	Tick() (bool, error)
}
