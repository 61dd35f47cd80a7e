package scene

import (
	"math/rand"
	"sync"

	"dotloader.klederson.com/internal/layout"
)

// ChangeKind names the operation that mutated the store.
type ChangeKind int

const (
	ChangeRandomizeAll ChangeKind = iota
	ChangeResetAll
	ChangeRandomizeChildren
	ChangeResetChildren
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeRandomizeAll:
		return "randomize-all"
	case ChangeResetAll:
		return "reset-all"
	case ChangeRandomizeChildren:
		return "randomize-children"
	case ChangeResetChildren:
		return "reset-children"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers after every mutation.
// Group is -1 for whole-scene operations.
type Change struct {
	Kind  ChangeKind
	Group int
}

// Ranges bounds the random draws made by the scatter operations.
type Ranges struct {
	ChildOffset float64 // Child offsets are drawn from [-ChildOffset, ChildOffset] per axis
	GroupOffset float64 // Group offsets are drawn from [-GroupOffset, GroupOffset] per axis
	GroupScale  float64 // Group scale while scattered
}

// Store owns the dot arena: a fixed number of groups, each with a fixed
// number of children. All mutations go through its operations.
type Store struct {
	mu         sync.RWMutex
	groups     []Dot
	children   []Dot
	childCount int
	ranges     Ranges
	palette    Palette
	rng        *rand.Rand

	subMu  sync.Mutex
	subs   map[int]func(Change)
	nextID int
}

// NewStore creates a store in the reassembled state: zero offsets, scale 1,
// neutral colors.
func NewStore(groupCount, childCount int, ranges Ranges, palette Palette, rng *rand.Rand) *Store {
	if groupCount < 0 {
		groupCount = 0
	}
	if childCount < 0 {
		childCount = 0
	}

	s := &Store{
		groups:     make([]Dot, groupCount),
		children:   make([]Dot, groupCount*childCount),
		childCount: childCount,
		ranges:     ranges,
		palette:    palette,
		rng:        rng,
		subs:       make(map[int]func(Change)),
	}

	for g := range s.groups {
		s.groups[g] = Dot{ID: g, Group: g, Color: Neutral, Scale: 1}
	}
	for i := range s.children {
		s.children[i] = Dot{ID: groupCount + i, Group: i / childCount, Color: Neutral, Scale: 1}
	}
	return s
}

// GroupCount returns the fixed number of groups.
func (s *Store) GroupCount() int {
	return len(s.groups)
}

// ChildCount returns the fixed number of children per group.
func (s *Store) ChildCount() int {
	return s.childCount
}

// Palette returns the palette random picks are drawn from.
func (s *Store) Palette() Palette {
	return s.palette
}

// Subscribe registers fn for change notifications. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(c Change) {
	s.subMu.Lock()
	fns := make([]func(Change), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// RandomizeChildren scatters the children of group g. Returns false when g
// is out of range.
func (s *Store) RandomizeChildren(g int) bool {
	s.mu.Lock()
	ok := s.randomizeChildren(g)
	s.mu.Unlock()

	if ok {
		s.notify(Change{Kind: ChangeRandomizeChildren, Group: g})
	}
	return ok
}

// ResetChildren returns the children of group g to zero offset and the
// neutral color. Returns false when g is out of range.
func (s *Store) ResetChildren(g int) bool {
	s.mu.Lock()
	ok := s.resetChildren(g)
	s.mu.Unlock()

	if ok {
		s.notify(Change{Kind: ChangeResetChildren, Group: g})
	}
	return ok
}

// RandomizeAll scatters every group and its children.
func (s *Store) RandomizeAll() {
	s.mu.Lock()
	for g := range s.groups {
		grp := &s.groups[g]
		grp.Offset = s.randomOffset(s.ranges.GroupOffset)
		grp.Scale = s.ranges.GroupScale
		grp.Color = s.palette.Random(s.rng)
		s.randomizeChildren(g)
	}
	s.mu.Unlock()

	s.notify(Change{Kind: ChangeRandomizeAll, Group: -1})
}

// ResetAll reassembles every group. Group colors get a fresh random pick
// rather than the neutral color; children go back to neutral.
func (s *Store) ResetAll() {
	s.mu.Lock()
	for g := range s.groups {
		grp := &s.groups[g]
		grp.Offset = layout.Vec2{}
		grp.Scale = 1
		grp.Color = s.palette.Random(s.rng)
		s.resetChildren(g)
	}
	s.mu.Unlock()

	s.notify(Change{Kind: ChangeResetAll, Group: -1})
}

// Snapshot returns a copy of the arena.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Groups:     make([]Dot, len(s.groups)),
		Children:   make([]Dot, len(s.children)),
		ChildCount: s.childCount,
	}
	copy(snap.Groups, s.groups)
	copy(snap.Children, s.children)
	return snap
}

func (s *Store) randomizeChildren(g int) bool {
	if g < 0 || g >= len(s.groups) {
		return false
	}
	for i := g * s.childCount; i < (g+1)*s.childCount; i++ {
		s.children[i].Offset = s.randomOffset(s.ranges.ChildOffset)
		s.children[i].Color = s.palette.Random(s.rng)
	}
	return true
}

func (s *Store) resetChildren(g int) bool {
	if g < 0 || g >= len(s.groups) {
		return false
	}
	for i := g * s.childCount; i < (g+1)*s.childCount; i++ {
		s.children[i].Offset = layout.Vec2{}
		s.children[i].Color = Neutral
	}
	return true
}

// randomOffset draws each axis uniformly from [-r, r].
func (s *Store) randomOffset(r float64) layout.Vec2 {
	return layout.Vec2{
		X: (s.rng.Float64()*2 - 1) * r,
		Y: (s.rng.Float64()*2 - 1) * r,
	}
}
