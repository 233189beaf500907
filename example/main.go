// Example shows a country picker built from dropdown.Box in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ --fuzzy --select-on-focus --items words.txt
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/backend/opengl"
	"github.com/go-theft-auto/dropdown/gui"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "dropdown example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type config struct {
	itemsFile     string
	fuzzy         bool
	selectOnFocus bool
	noFilter      bool
	width         float32
	style         string
	verbose       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Pick a country from a filtering dropdown",
		Long: `Opens a window with a text field that suggests matching items
while you type. Click a suggestion to put it in the field.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			gui.SetVerbose(cfg.verbose)
			return run(cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.itemsFile, "items", "", "file with one suggestion per line (default: built-in country list)")
	f.BoolVar(&cfg.fuzzy, "fuzzy", false, "match suggestions fuzzily instead of by substring")
	f.BoolVar(&cfg.selectOnFocus, "select-on-focus", false, "select the whole text when the field gains focus")
	f.BoolVar(&cfg.noFilter, "no-filter", false, "always show every suggestion")
	f.Float32Var(&cfg.width, "width", 240, "width of the text field in pixels")
	f.StringVar(&cfg.style, "style", "default", "style: default, gta or light")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log focus, popup and selection events")
	return cmd
}

func run(cfg config) error {
	style, ok := gui.StyleByName(cfg.style)
	if !ok {
		return fmt.Errorf("unknown style %q", cfg.style)
	}
	items := countries
	if cfg.itemsFile != "" {
		var err error
		if items, err = loadItems(cfg.itemsFile); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(w, h)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewInputAdapter(window)
	ui := gui.New(renderer,
		gui.WithStyle(style),
		gui.WithClipboard(opengl.Clipboard{Window: window}),
	)

	var matcher dropdown.Matcher = dropdown.Substring
	if cfg.fuzzy {
		matcher = dropdown.Fuzzy
	}

	var (
		country string
		status  = "nothing picked yet"
		last    = time.Now()
	)
	for !window.ShouldClose() {
		glfw.PollEvents()
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		fw, fh := window.GetFramebufferSize()
		renderer.Resize(fw, fh)
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input.Frame(), gui.Vec2{X: float32(fw), Y: float32(fh)}, dt)
		ctx.SetCursorPos(16, 16)
		ctx.Panel("Country", gui.Width(cfg.width+2*style.PanelPadding))(func() {
			resp := dropdown.FromSlice(items, "country", &country, dropdown.Selectable).
				FilterByInput(!cfg.noFilter).
				SelectOnFocus(cfg.selectOnFocus).
				Matcher(matcher).
				DesiredWidth(cfg.width).
				TextProperties(func(te gui.TextEdit) gui.TextEdit {
					return te.HintText("start typing a country")
				}).
				Show(ctx)

			switch {
			case resp.ValueChanged:
				status = "picked " + country
			case resp.TextChanged:
				status = fmt.Sprintf("typed %q", country)
			}
			ctx.TextDisabled(status)
		})
		err := ui.End()
		input.EndFrame()
		if err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}
