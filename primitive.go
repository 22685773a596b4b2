package glscope

import (
	"context"
	"fmt"
	"log/slog"
)

// PrimitiveKind is implemented by the ten primitive tag types below and
// by nothing else. Each tag resolves to one fixed glBegin mode.
type PrimitiveKind interface {
	primitive() uint32
}

// Quads are independent four-vertex quadrilaterals (GL_QUADS).
type Quads struct{}

// QuadStrip is a strip of connected quadrilaterals (GL_QUAD_STRIP).
type QuadStrip struct{}

// Triangles are independent three-vertex triangles (GL_TRIANGLES).
type Triangles struct{}

// TriangleStrip is a strip of connected triangles (GL_TRIANGLE_STRIP).
type TriangleStrip struct{}

// TriangleFan is a fan of triangles sharing the first vertex
// (GL_TRIANGLE_FAN).
type TriangleFan struct{}

// Lines are independent two-vertex segments (GL_LINES).
type Lines struct{}

// LineStrip is an open polyline (GL_LINE_STRIP).
type LineStrip struct{}

// LineLoop is a closed polyline (GL_LINE_LOOP).
type LineLoop struct{}

// Points are single vertices (GL_POINTS).
type Points struct{}

// Polygon is one convex polygon (GL_POLYGON).
type Polygon struct{}

func (Quads) primitive() uint32         { return 0x0007 }
func (QuadStrip) primitive() uint32     { return 0x0008 }
func (Triangles) primitive() uint32     { return 0x0004 }
func (TriangleStrip) primitive() uint32 { return 0x0005 }
func (TriangleFan) primitive() uint32   { return 0x0006 }
func (Lines) primitive() uint32         { return 0x0001 }
func (LineStrip) primitive() uint32     { return 0x0003 }
func (LineLoop) primitive() uint32      { return 0x0002 }
func (Points) primitive() uint32        { return 0x0000 }
func (Polygon) primitive() uint32       { return 0x0009 }

// Primitive is an open glBegin/glEnd block of kind K. Vertices, colors and
// texture coordinates are submitted directly to the context while it is
// open. Only one Primitive may be open per context at a time; Primitive
// does not check this.
type Primitive[K PrimitiveKind] struct {
	ctx    Context
	closed bool
}

// BeginPrimitive starts assembling a primitive of kind K.
//
//	p := glscope.BeginPrimitive[glscope.Triangles](ctx)
//	defer p.Close()
func BeginPrimitive[K PrimitiveKind](ctx Context) *Primitive[K] {
	var k K
	ctx.Begin(k.primitive())
	logKind(slog.LevelDebug, "glscope: primitive begun", k)
	return &Primitive[K]{ctx: ctx}
}

// Kind returns the glBegin mode of K.
func (p *Primitive[K]) Kind() uint32 {
	var k K
	return k.primitive()
}

// Close ends the primitive. Only the first call ends it.
func (p *Primitive[K]) Close() {
	var k K
	if p.closed {
		logKind(slog.LevelWarn, "glscope: primitive closed twice", k)
		return
	}
	p.closed = true
	p.ctx.End()
	logKind(slog.LevelDebug, "glscope: primitive ended", k)
}

// Draw runs fn between glBegin(K) and glEnd. End is issued when fn returns
// or panics, and fn's error is returned.
func Draw[K PrimitiveKind](ctx Context, fn func() error) error {
	p := BeginPrimitive[K](ctx)
	defer p.Close()
	return fn()
}

// logKind formats k only when level is enabled.
func logKind(level slog.Level, msg string, k PrimitiveKind) {
	l := Logger()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, msg, "kind", fmt.Sprintf("%T", k))
}
