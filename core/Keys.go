package core

// Key is a logical key the game understands. Terminal or window key codes are
// translated into these before they reach the simulation.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyUp
	KeyDown
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyQuit:
		return "Quit"
	}
	return "Unknown"
}

// KeySet holds the keys currently held down.
type KeySet map[Key]struct{}

func NewKeySet(keys ...Key) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Contains is safe on a nil set.
func (s KeySet) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

// Controls binds a paddle to its two movement keys.
type Controls struct {
	Up   Key
	Down Key
}

var (
	LeftControls  = Controls{Up: KeyW, Down: KeyS}
	RightControls = Controls{Up: KeyUp, Down: KeyDown}
)

// Input is polled once per frame by the loop.
type Input interface {
	// Poll returns the held keys and whether the player asked to quit.
	Poll() (KeySet, bool)
}
