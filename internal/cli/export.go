package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/soypat/sdfhole/render"
	"github.com/soypat/sdfhole/sdf"
	"github.com/spf13/cobra"
)

func newSCADCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "scad <scene>",
		Short: "Write the scene as OpenSCAD source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSCAD(cmd.Context(), args[0], output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func runSCAD(ctx context.Context, scenePath, output string, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	scene, err := loadScene(ctx, scenePath)
	if err != nil {
		return err
	}
	solid, err := buildScene(ctx, scene)
	if err != nil {
		return err
	}
	if output == "" {
		return sdf.WriteSCAD(stdout, solid)
	}
	fp, err := os.Create(output)
	if err != nil {
		return err
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	if err = sdf.WriteSCAD(w, solid); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	logger.Info("wrote OpenSCAD", "path", output)
	return fp.Close()
}

const defaultCells = 200

func newSTLCmd() *cobra.Command {
	var (
		output string
		cells  int
	)
	cmd := &cobra.Command{
		Use:   "stl <scene>",
		Short: "Tessellate the scene and write a binary STL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "-" {
				return writeSTL(cmd.Context(), args[0], cells, cmd.OutOrStdout())
			}
			_, err := runSTL(cmd.Context(), args[0], outputPath(output, args[0], ".stl"), cells)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default <scene>.stl)")
	cmd.Flags().IntVar(&cells, "cells", defaultCells, "marching cubes cells along the longest side")
	return cmd
}

// runSTL writes the tessellated scene to output and returns the path written.
func runSTL(ctx context.Context, scenePath, output string, cells int) (string, error) {
	logger := loggerFromContext(ctx)
	solid, err := meshScene(ctx, scenePath, cells)
	if err != nil {
		return "", err
	}
	prog := newProgress(logger)
	if err := render.CreateSTL(output, render.NewMarchingCubes(solid, cells)); err != nil {
		return "", fmt.Errorf("writing %s: %w", output, err)
	}
	prog.done("wrote STL", "path", output, "cells", cells)
	return output, nil
}

// writeSTL tessellates the scene in memory and writes it to w.
func writeSTL(ctx context.Context, scenePath string, cells int, w io.Writer) error {
	logger := loggerFromContext(ctx)
	solid, err := meshScene(ctx, scenePath, cells)
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	model, err := render.RenderAll(render.NewMarchingCubes(solid, cells))
	if err != nil {
		return fmt.Errorf("tessellating: %w", err)
	}
	bw := bufio.NewWriter(w)
	if err := render.WriteSTL(bw, model); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	prog.done("wrote STL", "triangles", len(model), "cells", cells)
	return nil
}

// meshScene checks cells and builds the scene at scenePath.
func meshScene(ctx context.Context, scenePath string, cells int) (sdf.SDF3, error) {
	if cells < 2 {
		return nil, fmt.Errorf("--cells must be at least 2, got %d", cells)
	}
	scene, err := loadScene(ctx, scenePath)
	if err != nil {
		return nil, err
	}
	return buildScene(ctx, scene)
}

func newPreviewCmd() *cobra.Command {
	var (
		output string
		cells  int
		view   = render.DefaultView
	)
	cmd := &cobra.Command{
		Use:   "preview <scene>",
		Short: "Render a shaded PNG of the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0], outputPath(output, args[0], ".png"), cells, view)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <scene>.png)")
	cmd.Flags().IntVar(&cells, "cells", defaultCells, "marching cubes cells along the longest side")
	cmd.Flags().IntVar(&view.Width, "width", view.Width, "image width in pixels")
	cmd.Flags().IntVar(&view.Height, "height", view.Height, "image height in pixels")
	return cmd
}

func runPreview(ctx context.Context, scenePath, output string, cells int, view render.View) error {
	logger := loggerFromContext(ctx)
	if view.Width <= 0 || view.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", view.Width, view.Height)
	}
	dir, err := os.MkdirTemp("", "sdfhole")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	stlPath, err := runSTL(ctx, scenePath, filepath.Join(dir, "preview.stl"), cells)
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	if err := render.PreviewPNG(stlPath, output, view); err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	prog.done("wrote preview", "path", output)
	return nil
}

func newSectionCmd() *cobra.Command {
	var (
		output  string
		index   int
		samples int
	)
	cmd := &cobra.Command{
		Use:   "section <scene>",
		Short: "Plot the cross-section of one hole of the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputPath(output, args[0], fmt.Sprintf("-section%d.png", index))
			return runSection(cmd.Context(), args[0], out, index, samples)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <scene>-section<index>.png)")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "index of the hole in the scene")
	cmd.Flags().IntVar(&samples, "samples", 200, "grid samples along each axis")
	return cmd
}

func runSection(ctx context.Context, scenePath, output string, index, samples int) error {
	logger := loggerFromContext(ctx)
	scene, err := loadScene(ctx, scenePath)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(scene.Holes) {
		return fmt.Errorf("hole index %d out of range [0, %d)", index, len(scene.Holes))
	}
	features, err := scene.Features()
	if err != nil {
		return err
	}
	section, err := features[index].Section(scene.SDFContext())
	if err != nil {
		return fmt.Errorf("holes[%d]: %w", index, err)
	}
	title := fmt.Sprintf("%s hole %d", scene.Holes[index].Kind, index)
	if err := render.PlotSection(section, title, output, samples); err != nil {
		return err
	}
	logger.Info("wrote section plot", "path", output)
	return nil
}
