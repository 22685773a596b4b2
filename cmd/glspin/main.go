// Command glspin opens a window and draws a spinning triangle inside a line
// loop using glscope matrix and primitive scopes.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli/v2"
	"github.com/vasalvit/glscope"
	"github.com/vasalvit/glscope/gl21"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

type options struct {
	width  int
	height int
	title  string
	frames int
	debug  bool
}

var (
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width",
		Value: 640,
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height",
		Value: 480,
	}
	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "window title",
		Value: "glspin",
	}
	framesFlag = &cli.IntFlag{
		Name:  "frames",
		Usage: "frames to draw before exiting, 0 runs until the window is closed",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "log scope open and close",
	}
)

// newApp builds the command with draw as its body, so flag handling can be
// exercised without a window.
func newApp(draw func(options) error) *cli.App {
	return &cli.App{
		Name:  "glspin",
		Usage: "draw a spinning triangle with glscope",
		Flags: []cli.Flag{widthFlag, heightFlag, titleFlag, framesFlag, debugFlag},
		Action: func(ctx *cli.Context) error {
			opts := options{
				width:  ctx.Int(widthFlag.Name),
				height: ctx.Int(heightFlag.Name),
				title:  ctx.String(titleFlag.Name),
				frames: ctx.Int(framesFlag.Name),
				debug:  ctx.Bool(debugFlag.Name),
			}
			if opts.width <= 0 || opts.height <= 0 {
				return fmt.Errorf("invalid window size %dx%d", opts.width, opts.height)
			}
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			glscope.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return draw(opts)
		},
	}
}

func main() {
	if err := newApp(run).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "glspin:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialise glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	window, err := glfw.CreateWindow(opts.width, opts.height, opts.title, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl21.Init(); err != nil {
		return err
	}

	var ctx glscope.Context = gl21.Context{}
	checked := glscope.NewChecked(ctx)

	for frame := 0; !window.ShouldClose(); frame++ {
		if opts.frames > 0 && frame >= opts.frames {
			break
		}
		w, h := window.GetFramebufferSize()
		if err := drawFrame(checked, w, h, float32(glfw.GetTime())); err != nil {
			return err
		}
		if err := gl21.Error(); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return checked.Verify()
}

func drawFrame(ctx glscope.Context, width, height int, t float32) error {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.1, 0.1, 0.12, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	aspect := float64(width) / float64(max(height, 1))
	return glscope.WithMatrixMode(ctx, glscope.Projection, func(p *glscope.Matrix) error {
		p.Reset()
		gl.Ortho(-aspect, aspect, -1, 1, -1, 1)
		// p pops whatever stack is active, so switch back before it closes.
		defer ctx.MatrixMode(uint32(glscope.Projection))

		return glscope.WithMatrixMode(ctx, glscope.ModelView, func(m *glscope.Matrix) error {
			offset := mgl32.Vec3{0.1, 0, 0}
			m.Reset().Translate(offset[:]).Rotate(t*90, 0, 0, 1)

			err := glscope.Draw[glscope.Triangles](ctx, func() error {
				gl.Color3f(1, 0.3, 0.2)
				gl.Vertex2f(0, 0.6)
				gl.Color3f(0.2, 1, 0.3)
				gl.Vertex2f(-0.5, -0.4)
				gl.Color3f(0.2, 0.3, 1)
				gl.Vertex2f(0.5, -0.4)
				return nil
			})
			if err != nil {
				return err
			}

			outline := glscope.BeginPrimitive[glscope.LineLoop](ctx)
			defer outline.Close()
			gl.Color3f(1, 1, 1)
			for _, v := range [][2]float32{{0, 0.7}, {-0.6, -0.5}, {0.6, -0.5}} {
				gl.Vertex2f(v[0], v[1])
			}
			return nil
		})
	})
}
