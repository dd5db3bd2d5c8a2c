// internal/input/input.go
package input

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source

// Source answers whether a named key is currently held. Names follow the
// browser convention: lower-case letters and "ArrowLeft"-style arrows.
type Source interface {
	IsPressed(name string) bool
}

// Key is a logical movement direction.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// Aliases lists the two physical key names bound to each direction.
var Aliases = map[Key][2]string{
	KeyLeft:  {"a", "ArrowLeft"},
	KeyRight: {"d", "ArrowRight"},
	KeyUp:    {"w", "ArrowUp"},
	KeyDown:  {"s", "ArrowDown"},
}

// State is the movement input sampled once per tick.
type State struct {
	Left, Right, Up, Down bool
}

// Sample reads every alias from src once. A nil source yields no input.
func Sample(src Source) State {
	if src == nil {
		return State{}
	}
	pressed := func(k Key) bool {
		names := Aliases[k]
		return src.IsPressed(names[0]) || src.IsPressed(names[1])
	}
	return State{
		Left:  pressed(KeyLeft),
		Right: pressed(KeyRight),
		Up:    pressed(KeyUp),
		Down:  pressed(KeyDown),
	}
}
