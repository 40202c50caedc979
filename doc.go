// Package ink is the rendering core of a document-graphics stack: the
// value types a content interpreter produces (paths, text runs, images,
// colorspaces, pixmaps) and the Device abstraction every rendering
// backend implements.
//
// # Overview
//
// A content interpreter walks page content and issues Device calls: fill
// this path with this color under this transform, clip to that shape,
// draw this glyph run. ink defines that vocabulary once, so the same
// stream of calls can drive very different consumers:
//
//   - [NullDevice] discards everything (interpreter smoke tests, timing)
//   - [BBoxDevice] accumulates the bounds of everything drawn
//   - [TraceDevice] prints one line per call for debugging
//   - displaylist.Device records calls for later replay
//   - raster.Device rasterizes into a [Pixmap]
//
// # Quick Start
//
//	// Record a page once, replay it anywhere.
//	list := displaylist.New(ink.RectWH(0, 0, 612, 792))
//	rec := displaylist.NewDevice(list)
//
//	path := ink.NewPath()
//	path.MoveTo(72, 72)
//	path.LineTo(540, 72)
//	path.LineTo(540, 720)
//	path.Close()
//	rec.FillPath(path, false, ink.Identity(), ink.DeviceRGB(), []float64{0, 0, 0}, 1)
//	rec.Close()
//
//	pix, _ := ink.NewPixmap(0, 0, 612, 792, ink.DeviceRGB(), false)
//	dev := raster.NewDevice(pix)
//	list.Run(dev, ink.Identity(), ink.InfiniteRect())
//
// # Coordinate System
//
// Device space has the origin at the top-left, X increasing right and Y
// increasing down. Transforms are 2x3 affine matrices in the usual page
// description convention: x' = a*x + c*y + e, y' = b*x + d*y + f.
//
// # Concurrency
//
// Nothing in ink starts goroutines or blocks. Value types are plain data;
// a recorded display list is immutable under replay and may be rendered
// from many goroutines as long as each one targets its own Pixmap. See
// the parallel subpackage for page-level fan-out helpers.
//
// # Logging
//
// ink is silent by default. Call [SetLogger] to receive debug output from
// this package and its subpackages.
package ink
