package gl21

import (
	"testing"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/stretchr/testify/require"
	"github.com/vasalvit/glscope"
)

func TestMatrixModeEnums(t *testing.T) {
	require.Equal(t, uint32(gl.MODELVIEW), uint32(glscope.ModelView))
	require.Equal(t, uint32(gl.PROJECTION), uint32(glscope.Projection))
	require.Equal(t, uint32(gl.TEXTURE), uint32(glscope.Texture))
}

func TestPrimitiveEnums(t *testing.T) {
	tests := []struct {
		Description string
		Got         uint32
		Want        uint32
	}{
		{"quads", (&glscope.Primitive[glscope.Quads]{}).Kind(), gl.QUADS},
		{"quad strip", (&glscope.Primitive[glscope.QuadStrip]{}).Kind(), gl.QUAD_STRIP},
		{"triangles", (&glscope.Primitive[glscope.Triangles]{}).Kind(), gl.TRIANGLES},
		{"triangle strip", (&glscope.Primitive[glscope.TriangleStrip]{}).Kind(), gl.TRIANGLE_STRIP},
		{"triangle fan", (&glscope.Primitive[glscope.TriangleFan]{}).Kind(), gl.TRIANGLE_FAN},
		{"lines", (&glscope.Primitive[glscope.Lines]{}).Kind(), gl.LINES},
		{"line strip", (&glscope.Primitive[glscope.LineStrip]{}).Kind(), gl.LINE_STRIP},
		{"line loop", (&glscope.Primitive[glscope.LineLoop]{}).Kind(), gl.LINE_LOOP},
		{"points", (&glscope.Primitive[glscope.Points]{}).Kind(), gl.POINTS},
		{"polygon", (&glscope.Primitive[glscope.Polygon]{}).Kind(), gl.POLYGON},
	}

	for _, test := range tests {
		require.Equal(t, test.Want, test.Got, test.Description)
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		Code uint32
		Want error
	}{
		{gl.INVALID_ENUM, ErrInvalidEnum},
		{gl.INVALID_VALUE, ErrInvalidValue},
		{gl.INVALID_OPERATION, ErrInvalidOperation},
		{gl.STACK_OVERFLOW, ErrStackOverflow},
		{gl.STACK_UNDERFLOW, ErrStackUnderflow},
		{gl.OUT_OF_MEMORY, ErrOutOfMemory},
	}

	for _, test := range tests {
		require.ErrorIs(t, errorFor(test.Code), test.Want, "code %#x", test.Code)
	}
	require.NoError(t, errorFor(gl.NO_ERROR))

	err := errorFor(0x9999)
	require.EqualError(t, err, "gl21: GL error 0x9999")
	for _, test := range tests {
		require.NotErrorIs(t, err, test.Want)
	}
}
