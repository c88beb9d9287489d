// Package render provides the shared primitives of the card rendering
// pipeline: color parsing and interpolation, and the layer compositor.
//
// The pipeline is organized in three stages, mirroring the package layout:
//
//   - background: procedural gradient, pattern, and light-effect generators
//     producing raster layers
//   - render (this package): alpha-over compositing of ordered layers onto
//     a base canvas
//   - card: the layout engines that pick palettes, stack layers, and draw
//     text onto the composited canvas
//   - sink: terminal encoding of the finished canvas to image bytes
//
// Everything here is pure computation: no I/O, no shared mutable state, and
// every function is safe for concurrent use from independent render calls.
package render
