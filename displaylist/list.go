package displaylist

import "github.com/gogpu/ink"

// List is a recorded sequence of device operations plus the media box
// it was recorded against. Record through a [Device]; replay with
// [List.Run]. A list is not safe to record into concurrently, but once
// recording is done it may be replayed from many goroutines at once.
type List struct {
	mediabox ink.Rect
	commands []Command
}

// New creates an empty list for content inside mediabox.
func New(mediabox ink.Rect) *List {
	return &List{mediabox: mediabox}
}

// Mediabox returns the rectangle the list was recorded against.
func (l *List) Mediabox() ink.Rect {
	return l.mediabox
}

// Len returns the number of recorded commands.
func (l *List) Len() int {
	return len(l.commands)
}

// IsEmpty reports whether nothing was recorded.
func (l *List) IsEmpty() bool {
	return len(l.commands) == 0
}

// Clear removes all commands, keeping allocated capacity for reuse.
func (l *List) Clear() {
	l.commands = l.commands[:0]
}

// Commands returns the recorded commands for inspection. The slice
// aliases the list; callers must not mutate it.
func (l *List) Commands() []Command {
	return l.commands
}

// Run replays every command into dev. The recorded CTM of each command
// is composed with ctm (recorded first, then ctm), and recorded clip
// scissors are intersected with scissor. Replay performs no balance
// validation; a list recorded through Device is balanced by
// construction.
func (l *List) Run(dev ink.Device, ctm ink.Matrix, scissor ink.Rect) {
	l.RunWithCookie(dev, ctm, scissor, nil)
}

// RunWithCookie replays like [List.Run] while reporting progress
// through cookie. The abort flag is checked between commands; an
// aborted replay stops early and marks the cookie incomplete. A nil
// cookie is allowed.
func (l *List) RunWithCookie(dev ink.Device, ctm ink.Matrix, scissor ink.Rect, cookie *ink.Cookie) {
	if cookie != nil {
		cookie.SetProgressMax(len(l.commands))
	}
	for _, cmd := range l.commands {
		if cookie != nil && cookie.ShouldAbort() {
			cookie.SetIncomplete(true)
			return
		}
		replay(dev, cmd, ctm, scissor)
		if cookie != nil {
			cookie.IncProgress()
		}
	}
}

func replay(dev ink.Device, cmd Command, ctm ink.Matrix, scissor ink.Rect) {
	switch c := cmd.(type) {
	case FillPath:
		dev.FillPath(c.Path, c.EvenOdd, c.CTM.Concat(ctm), c.Colorspace, c.Color, c.Alpha)
	case StrokePath:
		dev.StrokePath(c.Path, c.Stroke, c.CTM.Concat(ctm), c.Colorspace, c.Color, c.Alpha)
	case ClipPath:
		dev.ClipPath(c.Path, c.EvenOdd, c.CTM.Concat(ctm), scissor.Intersect(c.Scissor))
	case ClipStrokePath:
		dev.ClipStrokePath(c.Path, c.Stroke, c.CTM.Concat(ctm), scissor.Intersect(c.Scissor))
	case FillText:
		dev.FillText(c.Text, c.CTM.Concat(ctm), c.Colorspace, c.Color, c.Alpha)
	case StrokeText:
		dev.StrokeText(c.Text, c.Stroke, c.CTM.Concat(ctm), c.Colorspace, c.Color, c.Alpha)
	case ClipText:
		dev.ClipText(c.Text, c.CTM.Concat(ctm), scissor.Intersect(c.Scissor))
	case ClipStrokeText:
		dev.ClipStrokeText(c.Text, c.Stroke, c.CTM.Concat(ctm), scissor.Intersect(c.Scissor))
	case IgnoreText:
		dev.IgnoreText(c.Text, c.CTM.Concat(ctm))
	case FillImage:
		dev.FillImage(c.Image, c.CTM.Concat(ctm), c.Alpha)
	case FillImageMask:
		dev.FillImageMask(c.Image, c.CTM.Concat(ctm), c.Colorspace, c.Color, c.Alpha)
	case ClipImageMask:
		dev.ClipImageMask(c.Image, c.CTM.Concat(ctm), scissor.Intersect(c.Scissor))
	case PopClip:
		dev.PopClip()
	case BeginMask:
		dev.BeginMask(c.Area, c.Luminosity, c.Colorspace, c.Color)
	case EndMask:
		dev.EndMask()
	case BeginGroup:
		dev.BeginGroup(c.Area, c.Colorspace, c.Isolated, c.Knockout, c.BlendMode, c.Alpha)
	case EndGroup:
		dev.EndGroup()
	case BeginTile:
		dev.BeginTile(c.Area, c.View, c.XStep, c.YStep, c.CTM.Concat(ctm))
	case EndTile:
		dev.EndTile()
	}
}
