package ink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBlendModeNames(t *testing.T) {
	tests := []struct {
		mode BlendMode
		name string
	}{
		{BlendNormal, "Normal"},
		{BlendMultiply, "Multiply"},
		{BlendScreen, "Screen"},
		{BlendOverlay, "Overlay"},
		{BlendDarken, "Darken"},
		{BlendLighten, "Lighten"},
		{BlendColorDodge, "ColorDodge"},
		{BlendColorBurn, "ColorBurn"},
		{BlendHardLight, "HardLight"},
		{BlendSoftLight, "SoftLight"},
		{BlendDifference, "Difference"},
		{BlendExclusion, "Exclusion"},
		{BlendHue, "Hue"},
		{BlendSaturation, "Saturation"},
		{BlendColor, "Color"},
		{BlendLuminosity, "Luminosity"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.name {
			t.Errorf("BlendMode(%d).String() = %q, want %q", tt.mode, got, tt.name)
		}
		if got := BlendModeFromName(tt.name); got != tt.mode {
			t.Errorf("BlendModeFromName(%q) = %v, want %v", tt.name, got, tt.mode)
		}
	}
	if got := BlendModeFromName("NoSuchMode"); got != BlendNormal {
		t.Errorf("BlendModeFromName(unknown) = %v, want %v", got, BlendNormal)
	}
	if got := BlendMode(99).String(); got != "Normal" {
		t.Errorf("BlendMode(99).String() = %q, want %q", got, "Normal")
	}
}

// driveFullInterface exercises every Device operation once, with
// balanced clip/mask/group/tile scopes.
func driveFullInterface(dev Device) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 10)
	stroke := NewStrokeState()
	text := NewText()
	text.ShowString(NewFont("test"), Identity(), "Hi", false, 0, BidiLTR, LangUnset)
	img, _ := NewImageFromRaw(2, 2, 8, DeviceGray(), make([]byte, 4))
	rgb := DeviceRGB()
	red := []float64{1, 0, 0}
	scissor := NewRect(0, 0, 100, 100)

	dev.FillPath(path, false, Identity(), rgb, red, 1)
	dev.StrokePath(path, stroke, Identity(), rgb, red, 1)
	dev.ClipPath(path, true, Identity(), scissor)
	dev.PopClip()
	dev.ClipStrokePath(path, stroke, Identity(), scissor)
	dev.PopClip()
	dev.FillText(text, Identity(), rgb, red, 1)
	dev.StrokeText(text, stroke, Identity(), rgb, red, 1)
	dev.ClipText(text, Identity(), scissor)
	dev.PopClip()
	dev.ClipStrokeText(text, stroke, Identity(), scissor)
	dev.PopClip()
	dev.IgnoreText(text, Identity())
	dev.FillImage(img, Identity(), 1)
	dev.FillImageMask(img, Identity(), rgb, red, 1)
	dev.ClipImageMask(img, Identity(), scissor)
	dev.PopClip()
	dev.BeginMask(scissor, false, rgb, red)
	dev.EndMask()
	dev.BeginGroup(scissor, nil, true, false, BlendMultiply, 0.5)
	dev.EndGroup()
	dev.BeginTile(scissor, NewRect(0, 0, 10, 10), 10, 10, Identity())
	dev.EndTile()
	dev.Close()
}

func TestNullDeviceAcceptsEverything(t *testing.T) {
	driveFullInterface(NullDevice{})
}

func TestBBoxDeviceEmpty(t *testing.T) {
	if got := NewBBoxDevice().BBox(); !got.IsEmpty() {
		t.Errorf("BBox() = %v, want empty", got)
	}
}

func TestBBoxDeviceFillPath(t *testing.T) {
	dev := NewBBoxDevice()
	path := NewPath()
	path.MoveTo(10, 10)
	path.LineTo(100, 100)

	dev.FillPath(path, false, Scale(2, 2), DeviceRGB(), []float64{1, 0, 0}, 1)

	want := NewRect(20, 20, 200, 200)
	if diff := cmp.Diff(want, dev.BBox(), approx); diff != "" {
		t.Errorf("BBox mismatch (-want +got):\n%s", diff)
	}
}

func TestBBoxDeviceStrokeExpands(t *testing.T) {
	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	stroke := NewStrokeState().WithLineWidth(4)

	dev := NewBBoxDevice()
	dev.StrokePath(path, stroke, Identity(), DeviceRGB(), []float64{0, 0, 0}, 1)
	want := NewRect(-2, -2, 12, 2)
	if diff := cmp.Diff(want, dev.BBox(), approx); diff != "" {
		t.Errorf("BBox mismatch (-want +got):\n%s", diff)
	}

	// The half-width expansion scales with the matrix.
	dev = NewBBoxDevice()
	dev.StrokePath(path, stroke, Scale(2, 2), DeviceRGB(), []float64{0, 0, 0}, 1)
	want = NewRect(-4, -4, 24, 4)
	if diff := cmp.Diff(want, dev.BBox(), approx); diff != "" {
		t.Errorf("scaled BBox mismatch (-want +got):\n%s", diff)
	}
}

func TestBBoxDeviceImageIsUnitSquare(t *testing.T) {
	img, err := NewImageFromRaw(4, 4, 8, DeviceGray(), make([]byte, 16))
	if err != nil {
		t.Fatalf("NewImageFromRaw: %v", err)
	}

	dev := NewBBoxDevice()
	dev.FillImage(img, Identity(), 1)
	want := NewRect(0, 0, 1, 1)
	if diff := cmp.Diff(want, dev.BBox(), approx); diff != "" {
		t.Errorf("BBox mismatch (-want +got):\n%s", diff)
	}

	dev.FillImageMask(img, Translate(100, 100), DeviceRGB(), []float64{0, 0, 0}, 1)
	want = NewRect(0, 0, 101, 101)
	if diff := cmp.Diff(want, dev.BBox(), approx); diff != "" {
		t.Errorf("BBox after mask mismatch (-want +got):\n%s", diff)
	}
}

func TestBBoxDeviceTextContributes(t *testing.T) {
	text := NewText()
	text.ShowGlyphAdvance(NewFont("test"), Identity(), 10, 1, 'A', 65, false, 0, BidiLTR, LangUnset)

	dev := NewBBoxDevice()
	dev.FillText(text, Identity(), DeviceRGB(), []float64{0, 0, 0}, 1)
	want := NewRect(0, -0.2, 10, 0.8)
	if diff := cmp.Diff(want, dev.BBox(), approx); diff != "" {
		t.Errorf("BBox mismatch (-want +got):\n%s", diff)
	}
}

func TestBBoxDeviceIgnoresClips(t *testing.T) {
	dev := NewBBoxDevice()
	path := NewPath()
	path.RectCoords(0, 0, 5, 5)

	dev.ClipPath(path, false, Identity(), NewRect(0, 0, 5, 5))
	dev.BeginMask(NewRect(0, 0, 3, 3), true, DeviceGray(), []float64{1})
	dev.EndMask()
	dev.PopClip()

	if got := dev.BBox(); !got.IsEmpty() {
		t.Errorf("BBox() = %v after clip/mask only, want empty", got)
	}
}

func TestTraceDeviceOutput(t *testing.T) {
	var buf bytes.Buffer
	dev := NewTraceDevice(&buf)

	path := NewPath()
	path.RectCoords(0, 0, 10, 10)
	dev.ClipPath(path, false, Identity(), NewRect(0, 0, 10, 10))
	dev.FillPath(path, true, Identity(), DeviceRGB(), []float64{1, 0, 0}, 0.5)
	dev.PopClip()
	dev.Close()

	want := strings.Join([]string{
		"clip_path even_odd=false ctm=[1 0 0 1 0 0] scissor=[0 0 10 10]",
		"  fill_path even_odd=true ctm=[1 0 0 1 0 0] color=[1 0 0] alpha=0.5",
		"pop_clip",
		"close",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestTraceDeviceNilStroke(t *testing.T) {
	var buf bytes.Buffer
	dev := NewTraceDevice(&buf)

	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	dev.StrokePath(path, nil, Identity(), DeviceGray(), []float64{0}, 1)

	text := NewText()
	text.ShowString(NewFont("test"), Identity(), "Hi", false, 0, BidiLTR, LangUnset)
	dev.StrokeText(text, nil, Identity(), DeviceGray(), []float64{0}, 1)

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if !strings.Contains(line, "width=0") {
			t.Errorf("line %q missing width=0 for nil stroke", line)
		}
	}
}

func TestTraceDeviceFullInterface(t *testing.T) {
	var buf bytes.Buffer
	driveFullInterface(NewTraceDevice(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if got, want := len(lines), 24; got != want {
		t.Errorf("trace line count = %v, want %v\n%s", got, want, buf.String())
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			t.Errorf("blank trace line in:\n%s", buf.String())
		}
	}
}
