// Package gltest provides a recording glscope.Context for tests that have
// no GL context available.
//
// A Recorder logs every call and also plays it against a small software
// model of the fixed-function state: one matrix stack per matrix mode and
// the begin/end flag. Calls GL would reject set an error and leave the
// model unchanged, the way GL ignores a command that raises an error.
package gltest

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vasalvit/glscope"
)

// Errors a Recorder reports, named after the GL error codes.
var (
	ErrInvalidEnum      = errors.New("gltest: GL_INVALID_ENUM")
	ErrInvalidOperation = errors.New("gltest: GL_INVALID_OPERATION")
	ErrStackOverflow    = errors.New("gltest: GL_STACK_OVERFLOW")
	ErrStackUnderflow   = errors.New("gltest: GL_STACK_UNDERFLOW")
)

// Stack depths of the model, the minimums GL requires of an implementation.
const (
	MaxModelViewDepth  = 32
	MaxProjectionDepth = 2
	MaxTextureDepth    = 2
)

// maxPrimitive is GL_POLYGON, the highest glBegin mode.
const maxPrimitive = 0x0009

// Recorder is a glscope.Context that records calls. The zero value is not
// usable; create one with NewRecorder.
type Recorder struct {
	calls  []Call
	mode   glscope.MatrixMode
	stacks map[glscope.MatrixMode][]mgl32.Mat4
	inPrim bool
	prim   uint32
	err    error
}

var _ glscope.Context = (*Recorder)(nil)

// NewRecorder returns a Recorder in the state of a fresh context: modelview
// active, every stack holding a single identity matrix.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Reset()
	return r
}

// Reset clears the call log and the error and restores the initial state.
func (r *Recorder) Reset() {
	r.calls = nil
	r.mode = glscope.ModelView
	r.stacks = map[glscope.MatrixMode][]mgl32.Mat4{
		glscope.ModelView:  {mgl32.Ident4()},
		glscope.Projection: {mgl32.Ident4()},
		glscope.Texture:    {mgl32.Ident4()},
	}
	r.inPrim = false
	r.prim = 0
	r.err = nil
}

func (r *Recorder) fail(err error, c Call) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s", err, c)
	}
}

// matrixCall logs c and reports whether the model may apply it. Matrix
// calls are not allowed between Begin and End.
func (r *Recorder) matrixCall(c Call) bool {
	r.calls = append(r.calls, c)
	if r.inPrim {
		r.fail(ErrInvalidOperation, c)
		return false
	}
	return true
}

func (r *Recorder) MatrixMode(mode uint32) {
	c := Mode(MatrixModeOp, mode)
	if !r.matrixCall(c) {
		return
	}
	if _, ok := r.stacks[glscope.MatrixMode(mode)]; !ok {
		r.fail(ErrInvalidEnum, c)
		return
	}
	r.mode = glscope.MatrixMode(mode)
}

func (r *Recorder) PushMatrix() {
	c := Bare(PushMatrixOp)
	if !r.matrixCall(c) {
		return
	}
	s := r.stacks[r.mode]
	if len(s) >= maxDepth(r.mode) {
		r.fail(ErrStackOverflow, c)
		return
	}
	r.stacks[r.mode] = append(s, s[len(s)-1])
}

func (r *Recorder) PopMatrix() {
	c := Bare(PopMatrixOp)
	if !r.matrixCall(c) {
		return
	}
	s := r.stacks[r.mode]
	if len(s) == 1 {
		r.fail(ErrStackUnderflow, c)
		return
	}
	r.stacks[r.mode] = s[:len(s)-1]
}

func (r *Recorder) LoadIdentity() {
	if r.matrixCall(Bare(LoadIdentityOp)) {
		r.setTop(mgl32.Ident4())
	}
}

// Translatef multiplies the top on the right, as glTranslatef does.
func (r *Recorder) Translatef(x, y, z float32) {
	if r.matrixCall(Translate(x, y, z)) {
		r.setTop(r.top().Mul4(mgl32.Translate3D(x, y, z)))
	}
}

// Rotatef multiplies the top on the right by a rotation of angle degrees.
// A zero axis leaves the top unchanged.
func (r *Recorder) Rotatef(angle, x, y, z float32) {
	if !r.matrixCall(Rotate(angle, x, y, z)) {
		return
	}
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return
	}
	rot := mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis.Normalize())
	r.setTop(r.top().Mul4(rot))
}

func (r *Recorder) Begin(mode uint32) {
	c := Mode(BeginOp, mode)
	r.calls = append(r.calls, c)
	switch {
	case r.inPrim:
		r.fail(ErrInvalidOperation, c)
	case mode > maxPrimitive:
		r.fail(ErrInvalidEnum, c)
	default:
		r.inPrim = true
		r.prim = mode
	}
}

func (r *Recorder) End() {
	c := Bare(EndOp)
	r.calls = append(r.calls, c)
	if !r.inPrim {
		r.fail(ErrInvalidOperation, c)
		return
	}
	r.inPrim = false
}

func (r *Recorder) top() mgl32.Mat4 {
	s := r.stacks[r.mode]
	return s[len(s)-1]
}

func (r *Recorder) setTop(m mgl32.Mat4) {
	s := r.stacks[r.mode]
	s[len(s)-1] = m
}

func maxDepth(mode glscope.MatrixMode) int {
	if mode == glscope.ModelView {
		return MaxModelViewDepth
	}
	if mode == glscope.Projection {
		return MaxProjectionDepth
	}
	return MaxTextureDepth
}

// Calls returns a copy of the calls recorded since the last Reset.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Mode returns the active matrix mode.
func (r *Recorder) Mode() glscope.MatrixMode {
	return r.mode
}

// Top returns the top matrix of the stack for mode, or the identity when
// mode names no stack.
func (r *Recorder) Top(mode glscope.MatrixMode) mgl32.Mat4 {
	s, ok := r.stacks[mode]
	if !ok {
		return mgl32.Ident4()
	}
	return s[len(s)-1]
}

// Depth returns the number of matrices on the stack for mode. A fresh
// stack has depth 1.
func (r *Recorder) Depth(mode glscope.MatrixMode) int {
	return len(r.stacks[mode])
}

// Open reports whether a primitive is being assembled, and its mode.
func (r *Recorder) Open() (mode uint32, ok bool) {
	return r.prim, r.inPrim
}

// Err returns the first GL error the recorded calls raised, or nil.
func (r *Recorder) Err() error {
	return r.err
}
