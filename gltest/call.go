package gltest

import "fmt"

// Op tells which Context method a Call records
type Op int

// These are the operations a Recorder logs
const (
	MatrixModeOp Op = iota
	PushMatrixOp
	PopMatrixOp
	LoadIdentityOp
	TranslateOp
	RotateOp
	BeginOp
	EndOp
)

var opNames = [...]string{
	MatrixModeOp:   "MatrixMode",
	PushMatrixOp:   "PushMatrix",
	PopMatrixOp:    "PopMatrix",
	LoadIdentityOp: "LoadIdentity",
	TranslateOp:    "Translatef",
	RotateOp:       "Rotatef",
	BeginOp:        "Begin",
	EndOp:          "End",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Call contains one recorded Context call with its arguments. Mode is set
// for MatrixModeOp and BeginOp, X, Y and Z for TranslateOp and RotateOp,
// Angle for RotateOp only.
type Call struct {
	Op    Op
	Mode  uint32
	Angle float32
	X     float32
	Y     float32
	Z     float32
}

// Mode returns a MatrixMode or Begin call.
func Mode(op Op, mode uint32) Call { return Call{Op: op, Mode: mode} }

// Translate returns a Translatef call.
func Translate(x, y, z float32) Call { return Call{Op: TranslateOp, X: x, Y: y, Z: z} }

// Rotate returns a Rotatef call.
func Rotate(angle, x, y, z float32) Call {
	return Call{Op: RotateOp, Angle: angle, X: x, Y: y, Z: z}
}

// Bare returns a call that carries no arguments.
func Bare(op Op) Call { return Call{Op: op} }

func (c Call) String() string {
	switch c.Op {
	case MatrixModeOp, BeginOp:
		return fmt.Sprintf("%s(%#x)", c.Op, c.Mode)
	case TranslateOp:
		return fmt.Sprintf("%s(%g, %g, %g)", c.Op, c.X, c.Y, c.Z)
	case RotateOp:
		return fmt.Sprintf("%s(%g, %g, %g, %g)", c.Op, c.Angle, c.X, c.Y, c.Z)
	}
	return c.Op.String() + "()"
}
