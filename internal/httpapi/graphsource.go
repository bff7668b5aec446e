package httpapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/coursecraft/flowengine/internal/flowgraph"
)

// ErrActivityNotFound is returned when no graph exists for an activity.
var ErrActivityNotFound = errors.New("activity not found")

// GraphSource resolves an activity id to its authored graph. Authoring
// happens in an external system; this engine only reads.
type GraphSource interface {
	Graph(ctx context.Context, activityID string) (*flowgraph.Graph, error)
}

// DirSource loads activity graphs from <dir>/<activityID>.json files.
// Loaded graphs are validated once and cached; authored content is
// immutable per deployment, so there is no invalidation.
type DirSource struct {
	dir      string
	loadOpts flowgraph.LoadOptions

	mu    sync.Mutex
	cache map[string]*flowgraph.Graph
}

// DirSourceOption configures a DirSource.
type DirSourceOption func(*DirSource)

// WithLoadOptions sets the options applied when loading authored graphs,
// such as a deployment-wide default mastery threshold.
func WithLoadOptions(opts flowgraph.LoadOptions) DirSourceOption {
	return func(s *DirSource) { s.loadOpts = opts }
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string, opts ...DirSourceOption) *DirSource {
	s := &DirSource{dir: dir, cache: make(map[string]*flowgraph.Graph)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DirSource) Graph(_ context.Context, activityID string) (*flowgraph.Graph, error) {
	if !validActivityID(activityID) {
		return nil, fmt.Errorf("%w: %q", ErrActivityNotFound, activityID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.cache[activityID]; ok {
		return g, nil
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, activityID+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrActivityNotFound, activityID)
		}
		return nil, fmt.Errorf("read activity %q: %w", activityID, err)
	}

	g, err := flowgraph.Load(raw, s.loadOpts)
	if err != nil {
		return nil, fmt.Errorf("load activity %q: %w", activityID, err)
	}
	// Structural problems are an authoring concern; the engine tolerates
	// them at traversal time, so a flawed graph is served with a warning
	// rather than taking the activity down.
	if err := g.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: activity %q: %v\n", activityID, err)
	}

	s.cache[activityID] = g
	return g, nil
}

// validActivityID rejects ids that could escape the content directory.
func validActivityID(id string) bool {
	if id == "" || strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return false
	}
	return true
}

// StaticSource serves a fixed set of graphs. Used in tests.
type StaticSource map[string]*flowgraph.Graph

func (s StaticSource) Graph(_ context.Context, activityID string) (*flowgraph.Graph, error) {
	g, ok := s[activityID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrActivityNotFound, activityID)
	}
	return g, nil
}
