// Command gen drives a dropdown through its states in a hidden window,
// captures the framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/backend/opengl"
	"github.com/go-theft-auto/dropdown/gui"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var fruits = []string{
	"apple", "apricot", "banana", "blackberry", "cherry", "grape",
	"mango", "orange", "papaya", "pear", "pineapple", "plum",
}

// fieldPos is a point inside the text field drawn by show.
var fieldPos = gui.Vec2{X: 30, Y: 20}

// screenshot is one capture. text is the initial buffer; focus clicks the
// field in the first frame so the popup is open.
type screenshot struct {
	name   string
	width  int
	height int
	style  gui.Style
	text   string
	focus  bool
	fuzzy  bool
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "dropdown_closed", width: 280, height: 60, style: gui.DefaultStyle(), text: "pear"},
		{name: "dropdown_open", width: 280, height: 260, style: gui.DefaultStyle(), focus: true},
		{name: "dropdown_filtered", width: 280, height: 160, style: gui.DefaultStyle(), text: "ap", focus: true},
		{name: "dropdown_fuzzy", width: 280, height: 160, style: gui.GTAStyle(), text: "ppl", focus: true, fuzzy: true},
	}
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func show(ctx *gui.Context, s screenshot, buf *string) {
	var m dropdown.Matcher = dropdown.Substring
	if s.fuzzy {
		m = dropdown.Fuzzy
	}
	ctx.SetCursorPos(12, 12)
	dropdown.FromSlice(fruits, "fruit", buf, dropdown.Selectable).
		Matcher(m).
		DesiredWidth(float32(s.width-24)).
		TextProperties(func(te gui.TextEdit) gui.TextEdit { return te.HintText("fruit") }).
		Show(ctx)
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection follows the shot size; resizing the hidden window
	// is asynchronous and would leave the scissor boxes out of step.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot so no focus or popup state carries over.
	ui := gui.New(renderer, gui.WithStyle(s.style))
	gui.NextFrame()
	gui.NextFrame()

	buf := s.text
	in := gui.NewInputState()
	in.SetMousePos(-1, -1)
	frames := 2
	if s.focus {
		// A click focuses the field, which opens the popup; the mouse then
		// moves away so no row is hovered.
		in.SetMousePos(fieldPos.X, fieldPos.Y)
		in.SetMouseButton(gui.MouseButtonLeft, true)
		frames = 4
	}

	size := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
	for i := range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		show(ui.Begin(in, size, 1.0/60.0), s, &buf)
		if err := ui.End(); err != nil {
			return err
		}
		in.Reset()
		if i == 0 {
			in.SetMouseButton(gui.MouseButtonLeft, false)
			in.SetMousePos(-1, -1)
		}
	}

	img, err := readPixels(s.width, s.height)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return fmt.Errorf("encode: %w", err)
	}
	return f.Close()
}

// readPixels copies the bottom-left origin framebuffer into a top-down image.
func readPixels(w, h int) (*image.RGBA, error) {
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("read pixels: gl error 0x%x", code)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	row := w * 4
	for y := range h {
		src := (h - 1 - y) * row
		copy(img.Pix[y*row:(y+1)*row], pixels[src:src+row])
	}
	return img, nil
}
