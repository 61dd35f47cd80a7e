package scene

import (
	"fmt"

	"dotloader.klederson.com/internal/layout"
)

// Dot is one drawable record in the arena. Groups and children share the
// type; a child's Group names its owner, a group's Group is its own index.
type Dot struct {
	ID     int // Stable key for render lists, never used for logic
	Group  int
	Offset layout.Vec2
	Color  Color
	Scale  float64
}

// Snapshot is a detached copy of the arena.
type Snapshot struct {
	Groups     []Dot
	Children   []Dot
	ChildCount int
}

// ChildrenOf returns the child records of group g, or nil when g is out of range.
func (s Snapshot) ChildrenOf(g int) []Dot {
	if g < 0 || g >= len(s.Groups) {
		return nil
	}
	return s.Children[g*s.ChildCount : (g+1)*s.ChildCount]
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Groups:     make([]Dot, len(s.Groups)),
		Children:   make([]Dot, len(s.Children)),
		ChildCount: s.ChildCount,
	}
	copy(out.Groups, s.Groups)
	copy(out.Children, s.Children)
	return out
}

// Lerp blends every record toward o by t. Both snapshots must come from the
// same store shape.
func (s Snapshot) Lerp(o Snapshot, t float64) Snapshot {
	out := s.Clone()
	for i := range out.Groups {
		out.Groups[i] = lerpDot(s.Groups[i], o.Groups[i], t)
	}
	for i := range out.Children {
		out.Children[i] = lerpDot(s.Children[i], o.Children[i], t)
	}
	return out
}

func lerpDot(a, b Dot, t float64) Dot {
	return Dot{
		ID:     b.ID,
		Group:  b.Group,
		Offset: a.Offset.Lerp(b.Offset, t),
		Color:  a.Color.Lerp(b.Color, t),
		Scale:  a.Scale + (b.Scale-a.Scale)*t,
	}
}

// String renders a compact one-line description, used by the inspector.
func (d Dot) String() string {
	return fmt.Sprintf("%+6.1f,%+6.1f x%.2f %s", d.Offset.X, d.Offset.Y, d.Scale, d.Color.Name)
}
