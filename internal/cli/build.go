package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/soypat/sdfhole/internal/config"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r3"
	"golang.org/x/sync/errgroup"
)

// loadScene reads and validates the scene at path.
func loadScene(ctx context.Context, path string) (*config.Scene, error) {
	logger := loggerFromContext(ctx)
	scene, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded scene", "path", path, "holes", len(scene.Holes), "material", scene.Material)
	return scene, nil
}

// buildScene builds every hole of the scene concurrently and returns them
// as the children of one compound solid.
func buildScene(ctx context.Context, scene *config.Scene) (sdf.SDF3, error) {
	logger := loggerFromContext(ctx)
	features, err := scene.Features()
	if err != nil {
		return nil, err
	}
	prog := newProgress(logger)
	sctx := scene.SDFContext()
	solids := make([]sdf.SDF3, len(features))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range features {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := f.Build(sctx)
			if err != nil {
				return fmt.Errorf("holes[%d]: %w", i, err)
			}
			if off := scene.Holes[i].Offset(); off != (r3.Vec{}) {
				s = sdf.Transform3D(s, sdf.Translate3D(off))
			}
			solids[i] = s
			logger.Debug("built hole", "index", i, "kind", scene.Holes[i].Kind)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	prog.done("built scene", "holes", len(solids))
	return sdf.Compound3D(solids...), nil
}

// outputPath returns out, or the scene path with its extension replaced by ext.
func outputPath(out, scenePath, ext string) string {
	if out != "" {
		return out
	}
	return strings.TrimSuffix(scenePath, filepath.Ext(scenePath)) + ext
}
