// Package gl21 binds glscope to a real OpenGL 2.1 context through the
// go-gl bindings. The compatibility profile is required: core profiles
// have no matrix stack and no glBegin.
package gl21

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/vasalvit/glscope"
)

// Init loads the GL 2.1 function pointers. A context must be current on
// the calling thread.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}
	glscope.Logger().Info("gl21: OpenGL initialised",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// Context forwards every call to the GL context current on the calling
// thread. It has no state; the zero value is ready to use.
type Context struct{}

var _ glscope.Context = Context{}

func (Context) MatrixMode(mode uint32)         { gl.MatrixMode(mode) }
func (Context) PushMatrix()                    { gl.PushMatrix() }
func (Context) PopMatrix()                     { gl.PopMatrix() }
func (Context) LoadIdentity()                  { gl.LoadIdentity() }
func (Context) Translatef(x, y, z float32)     { gl.Translatef(x, y, z) }
func (Context) Rotatef(angle, x, y, z float32) { gl.Rotatef(angle, x, y, z) }
func (Context) Begin(mode uint32)              { gl.Begin(mode) }
func (Context) End()                           { gl.End() }

// Errors returned by Error, one per GL error code.
var (
	ErrInvalidEnum      = errors.New("gl21: GL_INVALID_ENUM")
	ErrInvalidValue     = errors.New("gl21: GL_INVALID_VALUE")
	ErrInvalidOperation = errors.New("gl21: GL_INVALID_OPERATION")
	ErrStackOverflow    = errors.New("gl21: GL_STACK_OVERFLOW")
	ErrStackUnderflow   = errors.New("gl21: GL_STACK_UNDERFLOW")
	ErrOutOfMemory      = errors.New("gl21: GL_OUT_OF_MEMORY")
)

var glErrors = map[uint32]error{
	gl.INVALID_ENUM:      ErrInvalidEnum,
	gl.INVALID_VALUE:     ErrInvalidValue,
	gl.INVALID_OPERATION: ErrInvalidOperation,
	gl.STACK_OVERFLOW:    ErrStackOverflow,
	gl.STACK_UNDERFLOW:   ErrStackUnderflow,
	gl.OUT_OF_MEMORY:     ErrOutOfMemory,
}

// Error returns the pending GL error flag as a Go error, or nil when the
// flag is GL_NO_ERROR. The scopes never query it themselves.
func Error() error {
	return errorFor(gl.GetError())
}

func errorFor(code uint32) error {
	if code == gl.NO_ERROR {
		return nil
	}
	if err, ok := glErrors[code]; ok {
		return err
	}
	return fmt.Errorf("gl21: GL error %#x", code)
}
