package geometry

import "strings"

// Kind selects one of the built-in primitives.
type Kind int

const (
	Triangle Kind = iota
	Cube
	Cylinder
	Sphere
	Torus
)

var kindNames = [...]string{
	Triangle: "triangle",
	Cube:     "cube",
	Cylinder: "cylinder",
	Sphere:   "sphere",
	Torus:    "torus",
}

// Kinds returns every primitive in declaration order.
func Kinds() []Kind {
	return []Kind{Triangle, Cube, Cylinder, Sphere, Torus}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind matches a primitive name case-insensitively.
// The second result is false for unrecognized names.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}
