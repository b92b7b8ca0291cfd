package walker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/internal/testutil"
	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/walker"
)

func TestShortestPaths_RootToLeaf(t *testing.T) {
	tr := testutil.SampleTree(t)

	paths, ok := walker.ShortestPaths(tr, "root", "child2.1")
	require.True(t, ok)
	require.Len(t, paths, 1)
	require.Equal(t, []string{"root", "child2", "child2.1"}, paths[3],
		"paths are keyed by their length in nodes")
}

func TestShortestPaths_DirectChild(t *testing.T) {
	tr := testutil.SampleTree(t)

	paths, ok := walker.ShortestPaths(tr, "child1", "child1.1")
	require.True(t, ok)
	require.Equal(t, []string{"child1", "child1.1"}, paths[2])
}

func TestShortestPaths_SameNode(t *testing.T) {
	tr := testutil.SampleTree(t)

	paths, ok := walker.ShortestPaths(tr, "child1", "child1")
	require.True(t, ok)
	require.Equal(t, []string{"child1"}, paths[1])
}

func TestShortestPaths_Unreachable(t *testing.T) {
	tr := testutil.SampleTree(t)

	// Only downward edges are traversed: siblings and ancestors are
	// unreachable.
	paths, ok := walker.ShortestPaths(tr, "child1", "child2.1")
	require.False(t, ok)
	require.Nil(t, paths)

	paths, ok = walker.ShortestPaths(tr, "child1.1", "root")
	require.False(t, ok)
	require.Nil(t, paths)
}

func TestShortestPaths_MissingEndKey(t *testing.T) {
	tr := testutil.SampleTree(t)

	paths, ok := walker.ShortestPaths(tr, "root", "missing")
	require.False(t, ok)
	require.Nil(t, paths)
}

func TestShortestPaths_DeepChain(t *testing.T) {
	tr := tree.New("n0", 0)
	prev := "n0"
	for _, key := range []string{"n1", "n2", "n3", "n4"} {
		require.NoError(t, tr.Insert(prev, key, 0))
		prev = key
	}

	paths, ok := walker.ShortestPaths(tr, "n0", "n4")
	require.True(t, ok)
	require.Equal(t, []string{"n0", "n1", "n2", "n3", "n4"}, paths[5])
}

func TestShortestPaths_AfterMove(t *testing.T) {
	tr := testutil.SampleTree(t)
	require.NoError(t, tr.Move("child2", "child1"))

	paths, ok := walker.ShortestPaths(tr, "root", "child2.1")
	require.True(t, ok)
	require.Equal(t, []string{"root", "child1", "child2", "child2.1"}, paths[4])
}
