package tree

import (
	randv2 "math/rand"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xavl/lib/infra"
)

func collect[E infra.Ordered](it TreeIter[E]) []E {
	res := make([]E, 0, 8)
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		res = append(res, elem)
	}
	return res
}

func ref[E infra.Ordered](elem E) *E {
	return &elem
}

func TestAVLTreeIter_Ascending(t *testing.T) {
	raw := make([]uint64, 0, 4096)
	for i := 0; i < 4096; i++ {
		raw = append(raw, randv2.Uint64()%1024)
	}
	expected := lo.Uniq(raw)
	sort.Slice(expected, func(i, j int) bool {
		return expected[i] < expected[j]
	})

	tree := NewAVLTreeOf(raw...)
	require.Equal(t, int64(len(expected)), tree.Len())
	require.NoError(t, InvariantValidate(tree))
	require.Equal(t, expected, collect(tree.Iter()))

	it := tree.Iter()
	for range expected {
		_, ok := it.Next()
		require.True(t, ok)
	}
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.Next()
	require.False(t, ok)
}

func TestAVLTreeIter_Empty(t *testing.T) {
	tree := NewAVLTree[int]()
	_, ok := tree.Iter().Next()
	require.False(t, ok)
	_, ok = tree.Range(ref(1), ref(100)).Next()
	require.False(t, ok)
	_, ok = tree.Drain().Next()
	require.False(t, ok)
}

func TestAVLTreeRange_HalfOpen(t *testing.T) {
	elems := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	tree := NewAVLTreeOf(lo.Shuffle(append([]int{}, elems...))...)

	type testcase struct {
		name     string
		start    *int
		end      *int
		expected []int
	}
	testcases := []testcase{
		{
			name:     "both unbounded",
			expected: elems,
		},
		{
			name:     "unbounded start",
			end:      ref(55),
			expected: []int{10, 20, 30, 40, 50},
		},
		{
			name:     "unbounded end",
			start:    ref(35),
			expected: []int{40, 50, 60, 70, 80, 90, 100},
		},
		{
			name:     "inner bounds on present elements",
			start:    ref(20),
			end:      ref(60),
			expected: []int{20, 30, 40, 50},
		},
		{
			name:     "inner bounds between elements",
			start:    ref(25),
			end:      ref(65),
			expected: []int{30, 40, 50, 60},
		},
		{
			name:     "start equals end",
			start:    ref(50),
			end:      ref(50),
			expected: []int{},
		},
		{
			name:     "start beyond maximum",
			start:    ref(200),
			expected: []int{},
		},
		{
			name:     "end before minimum",
			end:      ref(5),
			expected: []int{},
		},
		{
			name:     "bounds cover everything",
			start:    ref(0),
			end:      ref(1000),
			expected: elems,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, collect(tree.Range(tc.start, tc.end)))
		})
	}
}

func TestAVLTreeRange_AgainstSortedReference(t *testing.T) {
	raw := make([]int64, 0, 2048)
	for i := 0; i < 2048; i++ {
		raw = append(raw, int64(randv2.Uint64()%4096))
	}
	sorted := lo.Uniq(raw)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	tree := NewAVLTreeOf(raw...)

	for i := 0; i < 200; i++ {
		l, r := int64(randv2.Uint64()%4096), int64(randv2.Uint64()%4096)
		if r < l {
			l, r = r, l
		}
		expected := lo.Filter(sorted, func(elem int64, _ int) bool {
			return l <= elem && elem < r
		})
		require.Equal(t, expected, collect(tree.Range(ref(l), ref(r))))
	}
}

func TestAVLTreeDrain(t *testing.T) {
	raw := make([]uint64, 0, 1024)
	for i := 0; i < 1024; i++ {
		raw = append(raw, randv2.Uint64()%512)
	}
	expected := lo.Uniq(raw)
	sort.Slice(expected, func(i, j int) bool {
		return expected[i] < expected[j]
	})

	tree := NewAVLTreeOf(raw...)
	it := tree.Drain()

	// The source is dismantled as soon as the drain cursor exists.
	require.True(t, tree.Empty())
	require.Equal(t, int64(0), tree.Len())
	require.Nil(t, tree.Root())
	_, ok := tree.Iter().Next()
	require.False(t, ok)

	require.Equal(t, expected, collect(it))
	_, ok = it.Next()
	require.False(t, ok)

	// The drained tree stays usable.
	require.True(t, tree.Insert(7))
	require.Equal(t, int64(1), tree.Len())
}

func TestAVLTreeForeach_EarlyStop(t *testing.T) {
	tree := NewAVLTreeOf(5, 3, 8, 1, 4, 7, 9)
	visited := make([]int, 0, 3)
	tree.Foreach(func(idx int64, elem int) bool {
		visited = append(visited, elem)
		return len(visited) < 3
	})
	require.Equal(t, []int{1, 3, 4}, visited)
}

func TestAVLTreeOf_DuplicatesDropped(t *testing.T) {
	tree := NewAVLTreeOf("pear", "apple", "pear", "fig", "apple", "fig")
	require.Equal(t, int64(3), tree.Len())
	require.Equal(t, []string{"apple", "fig", "pear"}, collect(tree.Iter()))

	require.Equal(t, []string{"apple", "fig", "pear"}, collect(tree.Drain()))
	require.True(t, tree.Empty())
}
