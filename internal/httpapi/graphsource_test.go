package httpapi

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activityJSON = `{
	"nodes": [
		{"id": "cond1", "type": "condition", "data": {"performance_threshold": 80}},
		{"id": "m", "type": "content"},
		{"id": "n", "type": "content"}
	],
	"connections": [
		{"from": "cond1", "to": "m", "label": "mastery"},
		{"from": "cond1", "to": "n", "label": "novel"}
	]
}`

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "act-1.json"), []byte(activityJSON), 0o644))
	src := NewDirSource(dir)

	g, err := src.Graph(context.Background(), "act-1")
	require.NoError(t, err)
	node, ok := g.Node("cond1")
	require.True(t, ok)
	require.NotNil(t, node.Condition)
	assert.Equal(t, 80, node.Condition.PerformanceThreshold)

	// Second load hits the cache and returns the same graph.
	g2, err := src.Graph(context.Background(), "act-1")
	require.NoError(t, err)
	assert.Same(t, g, g2)
}

func TestDirSource_NotFound(t *testing.T) {
	src := NewDirSource(t.TempDir())

	_, err := src.Graph(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestDirSource_RejectsPathTraversal(t *testing.T) {
	src := NewDirSource(t.TempDir())

	for _, id := range []string{"../etc/passwd", "a/b", `a\b`, ""} {
		_, err := src.Graph(context.Background(), id)
		assert.ErrorIs(t, err, ErrActivityNotFound, "id %q", id)
	}
}
