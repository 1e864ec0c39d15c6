package glm

// Component names a single lane of a vector.
type Component uint8

const (
	ComponentX Component = iota
	ComponentY
	ComponentZ
	ComponentW
)

func outOfRange(c Component, typ string) string {
	return "glm: component " + c.String() + " out of range for " + typ
}
