package glscope

// Matrix holds one pushed entry of a matrix stack. The entry is pushed by
// NewMatrix or NewMatrixMode and popped by Close, so the usual pattern is
//
//	m := glscope.NewMatrix(ctx)
//	defer m.Close()
//	m.Reset().Translate(pos[:]).Rotate(angle, 0, 0, 1)
//
// The mutators act on the context immediately. Matrix keeps no copy of the
// matrix itself.
type Matrix struct {
	ctx     Context
	mode    MatrixMode
	hasMode bool
	closed  bool
}

// NewMatrix pushes a copy of the top of the active matrix stack.
func NewMatrix(ctx Context) *Matrix {
	ctx.PushMatrix()
	Logger().Debug("glscope: matrix pushed")
	return &Matrix{ctx: ctx}
}

// NewMatrixMode makes mode the active matrix stack and pushes a copy of its
// top. The mode switch is not undone by Close: it stays in effect for the
// whole context, and nothing may change the active mode before Close or the
// pop lands on the wrong stack.
func NewMatrixMode(ctx Context, mode MatrixMode) *Matrix {
	ctx.MatrixMode(uint32(mode))
	ctx.PushMatrix()
	Logger().Debug("glscope: matrix pushed", "mode", mode)
	return &Matrix{ctx: ctx, mode: mode, hasMode: true}
}

// Mode returns the matrix mode selected when m was opened. ok is false for
// a Matrix created by NewMatrix.
func (m *Matrix) Mode() (mode MatrixMode, ok bool) {
	return m.mode, m.hasMode
}

// Close pops the top of the active matrix stack. Only the first call pops.
func (m *Matrix) Close() {
	if m.closed {
		Logger().Warn("glscope: matrix closed twice")
		return
	}
	m.closed = true
	m.ctx.PopMatrix()
	Logger().Debug("glscope: matrix popped")
}

// Reset replaces the top of the stack with the identity matrix.
func (m *Matrix) Reset() *Matrix {
	if m.usable("reset") {
		m.ctx.LoadIdentity()
	}
	return m
}

// Translate multiplies the top of the stack by a translation to pos. Only
// the first three components are read; missing ones count as zero.
func (m *Matrix) Translate(pos []float32) *Matrix {
	if !m.usable("translate") {
		return m
	}
	var v [3]float32
	copy(v[:], pos)
	m.ctx.Translatef(v[0], v[1], v[2])
	return m
}

// Rotate multiplies the top of the stack by a rotation of angle degrees
// about the axis (x, y, z).
func (m *Matrix) Rotate(angle, x, y, z float32) *Matrix {
	if m.usable("rotate") {
		m.ctx.Rotatef(angle, x, y, z)
	}
	return m
}

func (m *Matrix) usable(op string) bool {
	if m.closed {
		Logger().Warn("glscope: matrix used after close", "op", op)
		return false
	}
	return true
}

// WithMatrix runs fn inside a pushed matrix. The matrix is popped when fn
// returns or panics, and fn's error is returned.
func WithMatrix(ctx Context, fn func(m *Matrix) error) error {
	m := NewMatrix(ctx)
	defer m.Close()
	return fn(m)
}

// WithMatrixMode is WithMatrix with mode selected before the push.
func WithMatrixMode(ctx Context, mode MatrixMode, fn func(m *Matrix) error) error {
	m := NewMatrixMode(ctx, mode)
	defer m.Close()
	return fn(m)
}
