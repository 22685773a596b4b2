package glscope

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type nopContext struct{}

func (nopContext) MatrixMode(uint32)          {}
func (nopContext) PushMatrix()                {}
func (nopContext) PopMatrix()                 {}
func (nopContext) LoadIdentity()              {}
func (nopContext) Translatef(_, _, _ float32) {}
func (nopContext) Rotatef(_, _, _, _ float32) {}
func (nopContext) Begin(uint32)               {}
func (nopContext) End()                       {}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		require.False(t, l.Enabled(context.Background(), level), "level %v", level)
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestScopesLog(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	m := NewMatrixMode(nopContext{}, Projection)
	m.Close()
	m.Close()
	m.Reset()

	p := BeginPrimitive[LineLoop](nopContext{})
	p.Close()

	out := buf.String()
	for _, want := range []string{
		"matrix pushed",
		"mode=projection",
		"matrix closed twice",
		"matrix used after close",
		"op=reset",
		"primitive begun",
		"kind=glscope.LineLoop",
	} {
		require.True(t, strings.Contains(out, want), "missing %q in %s", want, out)
	}
}

func TestSilentPrimitiveDoesNotFormat(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(nil)

	allocs := testing.AllocsPerRun(100, func() {
		p := BeginPrimitive[TriangleStrip](nopContext{})
		p.Close()
	})
	// at most the Primitive itself
	require.LessOrEqual(t, allocs, float64(1))
}

func TestMatrixModeString(t *testing.T) {
	require.Equal(t, "modelview", ModelView.String())
	require.Equal(t, "texture", Texture.String())
	require.Equal(t, "MatrixMode(0x1234)", MatrixMode(0x1234).String())
}
