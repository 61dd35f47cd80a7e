package scene

import (
	"math/rand"
	"testing"

	"dotloader.klederson.com/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRanges = Ranges{ChildOffset: 30, GroupOffset: 20, GroupScale: 2.5}

func newTestStore(seed int64) *Store {
	return NewStore(6, 3, testRanges, DefaultPalette, rand.New(rand.NewSource(seed)))
}

func TestNewStore_Shape(t *testing.T) {
	s := newTestStore(1)
	snap := s.Snapshot()

	require.Len(t, snap.Groups, 6)
	require.Len(t, snap.Children, 18)
	assert.Equal(t, 6, s.GroupCount())
	assert.Equal(t, 3, s.ChildCount())

	seen := make(map[int]bool)
	for g, grp := range snap.Groups {
		assert.Equal(t, g, grp.Group)
		assert.Equal(t, 1.0, grp.Scale)
		assert.Equal(t, Neutral, grp.Color)
		seen[grp.ID] = true

		children := snap.ChildrenOf(g)
		require.Len(t, children, 3)
		for _, c := range children {
			assert.Equal(t, g, c.Group)
			assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
			seen[c.ID] = true
		}
	}
	assert.Len(t, seen, 24)
}

func TestStore_ResetChildren(t *testing.T) {
	s := newTestStore(2)
	s.RandomizeAll()

	require.True(t, s.ResetChildren(4))

	snap := s.Snapshot()
	for _, c := range snap.ChildrenOf(4) {
		assert.Equal(t, layout.Vec2{}, c.Offset)
		assert.Equal(t, Neutral, c.Color)
	}

	// The group's own state and other groups are untouched.
	assert.Equal(t, 2.5, snap.Groups[4].Scale)
	scattered := false
	for _, c := range snap.ChildrenOf(0) {
		if c.Offset != (layout.Vec2{}) {
			scattered = true
		}
	}
	assert.True(t, scattered)
}

func TestStore_RandomizeChildrenRanges(t *testing.T) {
	s := newTestStore(3)

	for trial := 0; trial < 500; trial++ {
		require.True(t, s.RandomizeChildren(trial%6))
	}

	snap := s.Snapshot()
	for _, c := range snap.Children {
		assert.GreaterOrEqual(t, c.Offset.X, -30.0)
		assert.LessOrEqual(t, c.Offset.X, 30.0)
		assert.GreaterOrEqual(t, c.Offset.Y, -30.0)
		assert.LessOrEqual(t, c.Offset.Y, 30.0)
		assert.Contains(t, DefaultPalette, c.Color)
	}
	for _, g := range snap.Groups {
		assert.Equal(t, layout.Vec2{}, g.Offset, "group offset is not touched by child ops")
		assert.Equal(t, 1.0, g.Scale)
	}
}

func TestStore_RandomizeChildrenColorsUniform(t *testing.T) {
	s := newTestStore(4)
	counts := make(map[string]int)

	const trials = 4000
	for i := 0; i < trials; i++ {
		s.RandomizeChildren(0)
		for _, c := range s.Snapshot().ChildrenOf(0) {
			counts[c.Color.Name]++
		}
	}

	require.Len(t, counts, len(DefaultPalette))
	expected := float64(trials*3) / float64(len(DefaultPalette))
	for name, n := range counts {
		assert.InDelta(t, expected, float64(n), expected*0.15, "color %s", name)
	}
}

func TestStore_OutOfRangeGroup(t *testing.T) {
	s := newTestStore(5)
	calls := 0
	s.Subscribe(func(Change) { calls++ })

	assert.False(t, s.RandomizeChildren(-1))
	assert.False(t, s.RandomizeChildren(6))
	assert.False(t, s.ResetChildren(99))
	assert.Zero(t, calls)
}

func TestStore_RandomizeAll(t *testing.T) {
	s := newTestStore(6)
	s.RandomizeAll()

	snap := s.Snapshot()
	for _, g := range snap.Groups {
		assert.GreaterOrEqual(t, g.Offset.X, -20.0)
		assert.LessOrEqual(t, g.Offset.X, 20.0)
		assert.GreaterOrEqual(t, g.Offset.Y, -20.0)
		assert.LessOrEqual(t, g.Offset.Y, 20.0)
		assert.Equal(t, 2.5, g.Scale)
		assert.Contains(t, DefaultPalette, g.Color)
	}
	for _, c := range snap.Children {
		assert.Contains(t, DefaultPalette, c.Color)
	}
}

func TestStore_RandomizeThenReset(t *testing.T) {
	s := newTestStore(7)
	s.RandomizeAll()
	s.ResetAll()

	snap := s.Snapshot()
	for _, g := range snap.Groups {
		assert.Equal(t, layout.Vec2{}, g.Offset)
		assert.Equal(t, 1.0, g.Scale)
		// Reset picks a fresh palette color for groups, not the neutral one.
		assert.Contains(t, DefaultPalette, g.Color)
	}
	for _, c := range snap.Children {
		assert.Equal(t, layout.Vec2{}, c.Offset)
		assert.Equal(t, Neutral, c.Color)
	}
}

func TestStore_Subscribe(t *testing.T) {
	s := newTestStore(8)

	var got []Change
	unsubscribe := s.Subscribe(func(c Change) {
		// Callbacks run outside the arena lock.
		_ = s.Snapshot()
		got = append(got, c)
	})

	s.RandomizeAll()
	s.ResetChildren(2)
	s.ResetAll()
	unsubscribe()
	s.RandomizeAll()

	assert.Equal(t, []Change{
		{Kind: ChangeRandomizeAll, Group: -1},
		{Kind: ChangeResetChildren, Group: 2},
		{Kind: ChangeResetAll, Group: -1},
	}, got)
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := newTestStore(9)
	snap := s.Snapshot()
	snap.Groups[0].Scale = 99
	snap.Children[0].Color = Red

	fresh := s.Snapshot()
	assert.Equal(t, 1.0, fresh.Groups[0].Scale)
	assert.Equal(t, Neutral, fresh.Children[0].Color)
}

func TestSnapshot_Lerp(t *testing.T) {
	s := newTestStore(10)
	from := s.Snapshot()
	s.RandomizeAll()
	to := s.Snapshot()

	assert.Equal(t, from, from.Lerp(to, 0))
	assert.Equal(t, to, from.Lerp(to, 1))

	mid := from.Lerp(to, 0.5)
	assert.InDelta(t, 1.75, mid.Groups[0].Scale, 1e-9)
	assert.InDelta(t, to.Groups[0].Offset.X/2, mid.Groups[0].Offset.X, 1e-9)
}

func TestSnapshot_ChildrenOfOutOfRange(t *testing.T) {
	snap := newTestStore(11).Snapshot()
	assert.Nil(t, snap.ChildrenOf(-1))
	assert.Nil(t, snap.ChildrenOf(6))
}
