package glscope

import "fmt"

// Context is the part of a fixed-function OpenGL context the scopes drive.
// All methods act on the context that is current on the calling thread;
// implementations do no locking.
type Context interface {
	MatrixMode(mode uint32)
	PushMatrix()
	PopMatrix()
	LoadIdentity()
	Translatef(x, y, z float32)
	Rotatef(angle, x, y, z float32)
	Begin(mode uint32)
	End()
}

// MatrixMode selects which matrix stack subsequent matrix calls affect
type MatrixMode uint32

// These are the matrix stacks of a fixed-function context. The values are
// the GL_MODELVIEW, GL_PROJECTION and GL_TEXTURE enums.
const (
	ModelView  MatrixMode = 0x1700
	Projection MatrixMode = 0x1701
	Texture    MatrixMode = 0x1702
)

func (m MatrixMode) String() string {
	switch m {
	case ModelView:
		return "modelview"
	case Projection:
		return "projection"
	case Texture:
		return "texture"
	}
	return fmt.Sprintf("MatrixMode(%#x)", uint32(m))
}
