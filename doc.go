// Package maplabel places curved text labels over the regions of a
// procedurally generated map.
//
// Given a region's pole of inaccessibility and an [Oracle] answering which
// region owns which cell, the engine probes the region's extent with rays,
// picks the pair of opposite-ish rays that spans the widest and most
// horizontal stretch, threads a label path through the pole, fits the
// region name to the path, and emits a [Label] ready for SVG rendering.
//
// # Pipeline
//
// [Generator.Generate] runs the stages for one region:
//
//   - [Directions] samples the full circle at a fixed angular step.
//   - [Generator.Rays] casts a ray per direction from the pole, growing it
//     until the ray or its side probes leave the region.
//   - [SelectBestPair] scores every ray pair by length, horizontality and
//     the curvature of the turn through the pole, keeping the best.
//   - [NewLabelPath] builds the left-to-right path through the pole.
//   - [FitText] chooses the name form, line split and font-size ratio for
//     the path length, measured in glyph widths via a [TextMeasurer].
//   - [LabelPath.Stretch] widens the path when the text overruns it, and
//     [Generator.Fits] checks that a two-line block stays inside the
//     region, dropping to one line when it does not.
//
// [Generator.GenerateAll] and [Generator.GenerateRegions] run the pipeline
// over many regions, optionally in parallel, and swap the results into a
// [Store] in one batch.
//
// # Coordinates
//
// The canvas is y-down: the origin sits in the top-left corner and angles
// grow clockwise. Angles at the sampling and scoring stages are degrees;
// [LabelPath.Orientation] and [Affine] rotations are radians.
//
// # Rendering
//
// [SVG] serializes cells and labels; [RenderLabels] writes each label as
// text along its path, and [PathData] exposes the path data for callers
// with their own rendering stack.
package maplabel
