package displaylist

import "github.com/gogpu/ink"

// CommandType identifies the device operation a command replays.
type CommandType uint8

const (
	CommandFillPath CommandType = iota
	CommandStrokePath
	CommandClipPath
	CommandClipStrokePath
	CommandFillText
	CommandStrokeText
	CommandClipText
	CommandClipStrokeText
	CommandIgnoreText
	CommandFillImage
	CommandFillImageMask
	CommandClipImageMask
	CommandPopClip
	CommandBeginMask
	CommandEndMask
	CommandBeginGroup
	CommandEndGroup
	CommandBeginTile
	CommandEndTile
)

var commandTypeNames = [...]string{
	"FillPath", "StrokePath", "ClipPath", "ClipStrokePath",
	"FillText", "StrokeText", "ClipText", "ClipStrokeText", "IgnoreText",
	"FillImage", "FillImageMask", "ClipImageMask",
	"PopClip", "BeginMask", "EndMask", "BeginGroup", "EndGroup",
	"BeginTile", "EndTile",
}

func (t CommandType) String() string {
	if int(t) >= len(commandTypeNames) {
		return "Unknown"
	}
	return commandTypeNames[t]
}

// Command is one recorded device operation. The concrete types below
// mirror the Device interface one to one; Close is a device lifecycle
// event and is not recorded. Commands own their Path/Text/StrokeState/
// color arguments (the recorder clones them); Image and Colorspace
// handles are shared, since both are immutable once drawn with.
type Command interface {
	Type() CommandType
}

type FillPath struct {
	Path       *ink.Path
	EvenOdd    bool
	CTM        ink.Matrix
	Colorspace *ink.Colorspace
	Color      []float64
	Alpha      float64
}

type StrokePath struct {
	Path       *ink.Path
	Stroke     *ink.StrokeState
	CTM        ink.Matrix
	Colorspace *ink.Colorspace
	Color      []float64
	Alpha      float64
}

type ClipPath struct {
	Path    *ink.Path
	EvenOdd bool
	CTM     ink.Matrix
	Scissor ink.Rect
}

type ClipStrokePath struct {
	Path    *ink.Path
	Stroke  *ink.StrokeState
	CTM     ink.Matrix
	Scissor ink.Rect
}

type FillText struct {
	Text       *ink.Text
	CTM        ink.Matrix
	Colorspace *ink.Colorspace
	Color      []float64
	Alpha      float64
}

type StrokeText struct {
	Text       *ink.Text
	Stroke     *ink.StrokeState
	CTM        ink.Matrix
	Colorspace *ink.Colorspace
	Color      []float64
	Alpha      float64
}

type ClipText struct {
	Text    *ink.Text
	CTM     ink.Matrix
	Scissor ink.Rect
}

type ClipStrokeText struct {
	Text    *ink.Text
	Stroke  *ink.StrokeState
	CTM     ink.Matrix
	Scissor ink.Rect
}

type IgnoreText struct {
	Text *ink.Text
	CTM  ink.Matrix
}

type FillImage struct {
	Image *ink.Image
	CTM   ink.Matrix
	Alpha float64
}

type FillImageMask struct {
	Image      *ink.Image
	CTM        ink.Matrix
	Colorspace *ink.Colorspace
	Color      []float64
	Alpha      float64
}

type ClipImageMask struct {
	Image   *ink.Image
	CTM     ink.Matrix
	Scissor ink.Rect
}

type PopClip struct{}

type BeginMask struct {
	Area       ink.Rect
	Luminosity bool
	Colorspace *ink.Colorspace
	Color      []float64
}

type EndMask struct{}

type BeginGroup struct {
	Area ink.Rect
	// Colorspace may be nil for a group without its own blending
	// colorspace.
	Colorspace *ink.Colorspace
	Isolated   bool
	Knockout   bool
	BlendMode  ink.BlendMode
	Alpha      float64
}

type EndGroup struct{}

type BeginTile struct {
	Area  ink.Rect
	View  ink.Rect
	XStep float64
	YStep float64
	CTM   ink.Matrix
}

type EndTile struct{}

func (FillPath) Type() CommandType       { return CommandFillPath }
func (StrokePath) Type() CommandType     { return CommandStrokePath }
func (ClipPath) Type() CommandType       { return CommandClipPath }
func (ClipStrokePath) Type() CommandType { return CommandClipStrokePath }
func (FillText) Type() CommandType       { return CommandFillText }
func (StrokeText) Type() CommandType     { return CommandStrokeText }
func (ClipText) Type() CommandType       { return CommandClipText }
func (ClipStrokeText) Type() CommandType { return CommandClipStrokeText }
func (IgnoreText) Type() CommandType     { return CommandIgnoreText }
func (FillImage) Type() CommandType      { return CommandFillImage }
func (FillImageMask) Type() CommandType  { return CommandFillImageMask }
func (ClipImageMask) Type() CommandType  { return CommandClipImageMask }
func (PopClip) Type() CommandType        { return CommandPopClip }
func (BeginMask) Type() CommandType      { return CommandBeginMask }
func (EndMask) Type() CommandType        { return CommandEndMask }
func (BeginGroup) Type() CommandType     { return CommandBeginGroup }
func (EndGroup) Type() CommandType       { return CommandEndGroup }
func (BeginTile) Type() CommandType      { return CommandBeginTile }
func (EndTile) Type() CommandType        { return CommandEndTile }
