package core

// Key is a discrete key identifier delivered by a frontend to the game.
// Frontends translate their native key events into Keys; anything the game
// has no name for arrives as KeyOther.
type Key int

const (
	KeyOther  Key = iota
	KeyLeft       // Left arrow (or a key bound to it)
	KeyRight      // Right arrow (or a key bound to it)
	KeySpace      // Space - start a round
	KeyEscape     // Escape - frontends quit on it before it reaches the game
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyOther:
		return "Other"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}
