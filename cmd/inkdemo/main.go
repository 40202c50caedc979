// Command inkdemo records a small page into a display list, optionally
// traces the replayed calls, renders the list into a pixmap and saves
// it as PNG.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/displaylist"
	"github.com/gogpu/ink/raster"
)

func main() {
	var (
		width  = flag.Int("width", 400, "image width")
		height = flag.Int("height", 400, "image height")
		output = flag.String("output", "demo.png", "output file")
		trace  = flag.Bool("trace", false, "print every replayed device call to stderr")
	)
	flag.Parse()

	w, h := float64(*width), float64(*height)
	list := displaylist.New(ink.RectWH(0, 0, w, h))
	recordPage(displaylist.NewDevice(list), w, h)
	log.Printf("recorded %d commands", list.Len())

	if *trace {
		list.Run(ink.NewTraceDevice(os.Stderr), ink.Identity(), ink.InfiniteRect())
	}

	bbox := ink.NewBBoxDevice()
	list.Run(bbox, ink.Identity(), ink.InfiniteRect())
	log.Printf("page bounds %v", bbox.BBox())

	pm, err := ink.NewPixmap(0, 0, *width, *height, ink.DeviceRGB(), false)
	if err != nil {
		log.Fatalf("creating pixmap: %v", err)
	}
	pm.Clear(255)

	list.Run(raster.NewDevice(pm), ink.Identity(), ink.InfiniteRect())

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("saving %s: %v", *output, err)
	}
	log.Printf("wrote %s (%dx%d)", *output, *width, *height)
}

// recordPage issues the demo drawing against any device.
func recordPage(dev ink.Device, w, h float64) {
	// Filled background frame.
	frame := ink.NewPath()
	frame.RectCoords(w*0.05, h*0.05, w*0.95, h*0.95)
	dev.FillPath(frame, false, ink.Identity(), ink.DeviceGray(), []float64{0.9}, 1)

	// Two overlapping squares, filled even-odd so the overlap stays
	// clear.
	squares := ink.NewPath()
	squares.RectCoords(w*0.1, h*0.1, w*0.5, h*0.5)
	squares.RectCoords(w*0.3, h*0.3, w*0.7, h*0.7)
	dev.FillPath(squares, true, ink.Identity(), ink.DeviceRGB(), []float64{0.2, 0.4, 0.8}, 1)

	// A curved blob from cubics, rotated via the CTM.
	blob := ink.NewPath()
	blob.MoveTo(0, -h*0.2)
	blob.CurveTo(w*0.25, -h*0.2, w*0.25, h*0.2, 0, h*0.2)
	blob.CurveTo(-w*0.25, h*0.2, -w*0.25, -h*0.2, 0, -h*0.2)
	blob.Close()
	ctm := ink.Rotate(30).Concat(ink.Translate(w*0.5, h*0.5))
	dev.FillPath(blob, false, ctm, ink.DeviceCMYK(), []float64{0, 0.8, 0.8, 0.1}, 1)

	// A clipped stroke: the zigzag only shows inside the top half.
	dev.ClipPath(topHalf(w, h), false, ink.Identity(), ink.InfiniteRect())
	zigzag := ink.NewPath()
	zigzag.MoveTo(w*0.1, h*0.4)
	for i := 1; i <= 8; i++ {
		y := h * 0.3
		if i%2 == 0 {
			y = h * 0.5
		}
		zigzag.LineTo(w*0.1+float64(i)*w*0.1, y)
	}
	stroke := ink.NewStrokeState().WithLineWidth(w * 0.01)
	dev.StrokePath(zigzag, stroke, ink.Identity(), ink.DeviceRGB(), []float64{0.8, 0.1, 0.1}, 1)
	dev.PopClip()

	// A tiny raw image scaled up into the lower-left corner.
	checker, err := ink.NewImageFromRaw(2, 2, 8, ink.DeviceRGB(), []byte{
		255, 200, 0, 40, 40, 40,
		40, 40, 40, 255, 200, 0,
	})
	if err != nil {
		log.Fatalf("building demo image: %v", err)
	}
	checker.SetInterpolate(false)
	dev.FillImage(checker, ink.Scale(w*0.15, h*0.15).Concat(ink.Translate(w*0.05, h*0.75)), 1)

	// Text is carried through the pipeline even though the raster
	// device leaves glyph rendering to the font layer.
	text := ink.NewText()
	text.ShowString(ink.NewFont("Demo"), ink.Translate(w*0.1, h*0.9), "ink demo",
		false, 0, ink.BidiLTR, ink.LangUnset)
	dev.FillText(text, ink.Identity(), ink.DeviceGray(), []float64{0}, 1)

	dev.Close()
}

func topHalf(w, h float64) *ink.Path {
	p := ink.NewPath()
	p.RectCoords(0, 0, w, h*0.5)
	return p
}
