package ink

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathBuild(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadTo(5, 6, 7, 8)
	p.CurveTo(9, 10, 11, 12, 13, 14)
	p.Close()
	p.RectCoords(0, 0, 2, 2)

	want := []PathElement{
		MoveTo{Point: Pt(1, 2)},
		LineTo{Point: Pt(3, 4)},
		QuadTo{Control: Pt(5, 6), Point: Pt(7, 8)},
		CurveTo{Control1: Pt(9, 10), Control2: Pt(11, 12), Point: Pt(13, 14)},
		ClosePath{},
		RectTo{Rect: NewRect(0, 0, 2, 2)},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("Elements() mismatch (-want +got):\n%s", diff)
	}
	if p.Len() != 6 {
		t.Errorf("Len() = %d, want 6", p.Len())
	}
	if p.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

func TestPathCurrentPoint(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		want  Point
		ok    bool
	}{
		{
			name:  "empty",
			build: func(p *Path) {},
			ok:    false,
		},
		{
			name:  "after move",
			build: func(p *Path) { p.MoveTo(1, 2) },
			want:  Pt(1, 2), ok: true,
		},
		{
			name: "after line",
			build: func(p *Path) {
				p.MoveTo(1, 2)
				p.LineTo(3, 4)
			},
			want: Pt(3, 4), ok: true,
		},
		{
			name: "quad endpoint not control",
			build: func(p *Path) {
				p.MoveTo(0, 0)
				p.QuadTo(5, 5, 2, 0)
			},
			want: Pt(2, 0), ok: true,
		},
		{
			name: "curve endpoint",
			build: func(p *Path) {
				p.MoveTo(0, 0)
				p.CurveTo(1, 1, 2, 2, 3, 0)
			},
			want: Pt(3, 0), ok: true,
		},
		{
			name: "close returns to subpath start",
			build: func(p *Path) {
				p.MoveTo(1, 1)
				p.LineTo(5, 5)
				p.Close()
			},
			want: Pt(1, 1), ok: true,
		},
		{
			name: "close resolves nearest subpath not first",
			build: func(p *Path) {
				p.MoveTo(0, 0)
				p.LineTo(1, 0)
				p.Close()
				p.MoveTo(10, 10)
				p.LineTo(11, 10)
				p.Close()
			},
			want: Pt(10, 10), ok: true,
		},
		{
			name:  "close without move falls back to origin",
			build: func(p *Path) { p.Close() },
			want:  Pt(0, 0), ok: true,
		},
		{
			name:  "rect contributes far corner",
			build: func(p *Path) { p.RectCoords(1, 2, 3, 4) },
			want:  Pt(3, 4), ok: true,
		},
		{
			name: "close after rect resolves rect origin",
			build: func(p *Path) {
				p.RectCoords(1, 2, 3, 4)
				p.Close()
			},
			want: Pt(1, 2), ok: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			got, ok := p.CurrentPoint()
			if ok != tt.ok {
				t.Fatalf("CurrentPoint() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("CurrentPoint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if got := p.Bounds(); !got.IsEmpty() {
		t.Errorf("empty path Bounds() = %v, want empty", got)
	}

	p.MoveTo(0, 0)
	p.QuadTo(10, -5, 4, 0)
	got := p.Bounds()
	want := NewRect(0, -5, 10, 0)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bounds() includes control points (-want +got):\n%s", diff)
	}

	p.RectCoords(-3, 1, 2, 2)
	got = p.Bounds()
	want = NewRect(-3, -5, 10, 2)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bounds() with rect (-want +got):\n%s", diff)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 1)
	p.QuadTo(3, 3, 4, 1)
	p.Close()

	q := p.Transform(Translate(10, 20))

	want := []PathElement{
		MoveTo{Point: Pt(11, 21)},
		LineTo{Point: Pt(12, 21)},
		QuadTo{Control: Pt(13, 23), Point: Pt(14, 21)},
		ClosePath{},
	}
	if diff := cmp.Diff(want, q.Elements()); diff != "" {
		t.Errorf("Transform() mismatch (-want +got):\n%s", diff)
	}

	// The source path is left untouched.
	if got, _ := p.CurrentPoint(); got != Pt(1, 1) {
		t.Errorf("source path changed: CurrentPoint() = %v, want (1, 1)", got)
	}
}

func TestPathTransformRectStaysAxisAligned(t *testing.T) {
	p := NewPath()
	p.RectCoords(0, 0, 2, 1)

	q := p.Transform(Rotate(90))

	elems := q.Elements()
	if len(elems) != 1 {
		t.Fatalf("len(Elements()) = %d, want 1", len(elems))
	}
	rt, ok := elems[0].(RectTo)
	if !ok {
		t.Fatalf("element = %T, want RectTo", elems[0])
	}
	// Rotating (0,0)-(2,1) by 90 degrees sweeps the corners through
	// (-1,0) and (0,2); the rect becomes their bounding box.
	want := NewRect(-1, 0, 0, 2)
	if diff := cmp.Diff(want, rt.Rect, approx); diff != "" {
		t.Errorf("rotated rect (-want +got):\n%s", diff)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)

	q := p.Clone()
	p.LineTo(2, 2)

	if q.Len() != 2 {
		t.Errorf("clone Len() = %d, want 2", q.Len())
	}
	if p.Len() != 3 {
		t.Errorf("source Len() = %d, want 3", p.Len())
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.Clear()

	if !p.IsEmpty() {
		t.Error("IsEmpty() = false after Clear")
	}
	if _, ok := p.CurrentPoint(); ok {
		t.Error("CurrentPoint() ok = true after Clear")
	}

	p.MoveTo(5, 5)
	if got, _ := p.CurrentPoint(); got != Pt(5, 5) {
		t.Errorf("CurrentPoint() after reuse = %v, want (5, 5)", got)
	}
}

func TestPathWalk(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.Close()

	var seen []PathElement
	p.Walk(func(e PathElement) {
		seen = append(seen, e)
	})
	if diff := cmp.Diff(p.Elements(), seen); diff != "" {
		t.Errorf("Walk() order mismatch (-want +got):\n%s", diff)
	}
}

func TestPathIsRectOnly(t *testing.T) {
	p := NewPath()
	if !p.IsRectOnly() {
		t.Error("empty path IsRectOnly() = false, want true")
	}

	p.RectCoords(0, 0, 1, 1)
	p.RectCoords(2, 2, 3, 3)
	if !p.IsRectOnly() {
		t.Error("IsRectOnly() = false for rect-only path")
	}

	p.MoveTo(0, 0)
	if p.IsRectOnly() {
		t.Error("IsRectOnly() = true after MoveTo")
	}
}
