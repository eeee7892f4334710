package longhike

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/longhike/dfs"
	"github.com/katalvlaran/longhike/gridgraph"
	"github.com/katalvlaran/longhike/internal/ctxlog"
)

// LongestPathWithSlopes returns the longest hike length in the map file at
// path when slopes force their direction.
func LongestPathWithSlopes(path string) (int, error) {
	res, err := Solve(context.Background(), path, dfs.SlopesEnabled)
	if err != nil {
		return 0, err
	}
	return res.Length, nil
}

// LongestPathWithoutSlopes returns the longest hike length in the map file
// at path when slopes are treated as plain path tiles.
func LongestPathWithoutSlopes(path string) (int, error) {
	res, err := Solve(context.Background(), path, dfs.SlopesIgnored)
	if err != nil {
		return 0, err
	}
	return res.Length, nil
}

// Solve loads the map at path, locates its entrance and runs the longest
// path search under policy. Errors from each stage are returned wrapped, so
// gridgraph.ErrMalformedInput, gridgraph.ErrNoStartFound and
// dfs.ErrNoPathFound remain detectable with errors.Is.
//
// Progress is logged to the logger carried by ctx, tagged with a run_id.
func Solve(ctx context.Context, path string, policy dfs.Policy, opts ...dfs.Option) (*dfs.Result, error) {
	logger := ctxlog.FromContext(ctx).With(
		"run_id", uuid.NewString(),
		"file", path,
		"policy", policy.String(),
	)

	g, err := gridgraph.LoadFile(path)
	if err != nil {
		logger.Error("Failed to load map.", "error", err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	start, err := g.Start()
	if err != nil {
		logger.Error("Map has no entrance.", "error", err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug("Map loaded.", "rows", g.Rows, "cols", g.Cols, "start", start.String())

	began := time.Now()
	all := append([]dfs.Option{dfs.WithContext(ctx), dfs.WithPolicy(policy)}, opts...)
	res, err := dfs.LongestPath(g, start, all...)
	if err != nil {
		logger.Error("Search failed.", "error", err, "elapsed", time.Since(began))
		return nil, fmt.Errorf("solve %s: %w", path, err)
	}
	logger.Info("Search finished.",
		"length", res.Length,
		"explored", res.Explored,
		"goals", res.GoalsReached,
		"elapsed", time.Since(began),
	)

	return res, nil
}
