package glscope

import (
	"errors"
	"fmt"
)

// Errors reported by Checked.
var (
	ErrUnbalanced      = errors.New("glscope: unbalanced scopes")
	ErrNestedPrimitive = errors.New("glscope: begin inside an open primitive")
	ErrEndWithoutBegin = errors.New("glscope: end without begin")
	ErrPopEmpty        = errors.New("glscope: pop without matching push")
	ErrInvalidMode     = errors.New("glscope: invalid matrix mode")
)

// Checked wraps a Context and counts pushes, pops, begins and ends as they
// pass through. Every call is forwarded unchanged; the first misuse seen is
// kept and reported by Err. Use it in debug builds or tests to assert that
// all scopes on a context were closed.
type Checked struct {
	inner  Context
	mode   MatrixMode
	depth  map[MatrixMode]int
	inPrim bool
	err    error
}

var _ Context = (*Checked)(nil)

// NewChecked wraps ctx. The active mode is assumed to be ModelView, which
// is the initial mode of a fresh GL context.
func NewChecked(ctx Context) *Checked {
	return &Checked{
		inner: ctx,
		mode:  ModelView,
		depth: make(map[MatrixMode]int),
	}
}

func (c *Checked) fail(err error) {
	if c.err == nil {
		c.err = err
		Logger().Warn("glscope: context misuse", "err", err)
	}
}

// MatrixMode tracks mode only when it names a matrix stack. GL ignores any
// other value and keeps the current stack active.
func (c *Checked) MatrixMode(mode uint32) {
	switch m := MatrixMode(mode); m {
	case ModelView, Projection, Texture:
		c.mode = m
	default:
		c.fail(fmt.Errorf("%w: %s", ErrInvalidMode, m))
	}
	c.inner.MatrixMode(mode)
}

func (c *Checked) PushMatrix() {
	c.depth[c.mode]++
	c.inner.PushMatrix()
}

func (c *Checked) PopMatrix() {
	if c.depth[c.mode] == 0 {
		c.fail(fmt.Errorf("%w: %s stack", ErrPopEmpty, c.mode))
	} else {
		c.depth[c.mode]--
	}
	c.inner.PopMatrix()
}

func (c *Checked) LoadIdentity()                  { c.inner.LoadIdentity() }
func (c *Checked) Translatef(x, y, z float32)     { c.inner.Translatef(x, y, z) }
func (c *Checked) Rotatef(angle, x, y, z float32) { c.inner.Rotatef(angle, x, y, z) }

func (c *Checked) Begin(mode uint32) {
	if c.inPrim {
		c.fail(fmt.Errorf("%w: mode %#x", ErrNestedPrimitive, mode))
	}
	c.inPrim = true
	c.inner.Begin(mode)
}

func (c *Checked) End() {
	if !c.inPrim {
		c.fail(ErrEndWithoutBegin)
	}
	c.inPrim = false
	c.inner.End()
}

// Depth returns the number of pushes not yet popped on the stack of mode.
func (c *Checked) Depth(mode MatrixMode) int {
	return c.depth[mode]
}

// Err returns the first misuse seen so far, or nil.
func (c *Checked) Err() error {
	return c.err
}

// Verify returns Err if set. Otherwise it returns an error wrapping
// ErrUnbalanced if any matrix stack still holds pushes or a primitive is
// still open.
func (c *Checked) Verify() error {
	if c.err != nil {
		return c.err
	}
	for _, mode := range []MatrixMode{ModelView, Projection, Texture} {
		if d := c.depth[mode]; d != 0 {
			return fmt.Errorf("%w: %d unpopped on %s stack", ErrUnbalanced, d, mode)
		}
	}
	for mode, d := range c.depth {
		if d != 0 {
			return fmt.Errorf("%w: %d unpopped on %s stack", ErrUnbalanced, d, mode)
		}
	}
	if c.inPrim {
		return fmt.Errorf("%w: primitive still open", ErrUnbalanced)
	}
	return nil
}
