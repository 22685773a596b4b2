// Package glscope pairs fixed-function OpenGL calls that must be balanced.
//
// A Matrix pushes a matrix stack when it is created and pops it on Close. A
// Primitive calls glBegin when it is created and glEnd on Close. Close is
// meant to be deferred, so the matching call is made however the enclosing
// function returns:
//
//	m := glscope.NewMatrixMode(ctx, glscope.ModelView)
//	defer m.Close()
//	m.Reset().Translate(pos[:]).Rotate(angle, 0, 1, 0)
//
//	tri := glscope.BeginPrimitive[glscope.Triangles](ctx)
//	defer tri.Close()
//	gl.Vertex3f(0, 1, 0)
//
// WithMatrix, WithMatrixMode and Draw do the same around a closure.
//
// The package talks to GL through the Context interface. Package gl21
// implements it on top of a real OpenGL 2.1 context; package gltest records
// calls for tests. A context is bound to one thread and glscope does no
// locking.
package glscope
