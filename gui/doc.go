/*
Package gui is a small immediate-mode GUI: the UI is rebuilt every frame,
widgets are plain method calls on a Context, and they report what happened
to them through their return values.

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600)
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))

	for !window.ShouldClose() {
	    ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, dt)

	    ctx.Panel("Search", gui.Padding(8))(func() {
	        gui.SingleLine(&query).HintText("type here").Show(ctx)
	        if ctx.Button("Go").Clicked {
	            run(query)
	        }
	    })

	    if err := ui.End(); err != nil {
	        log.Fatal(err)
	    }
	    window.SwapBuffers()
	}

# Identity and Retained State

Widgets are identified by an ID. ctx.GetID derives one from a label and
the order of calls in the frame; NewID derives one from any seed and does
not depend on call order. ID.With derives child IDs.

Two kinds of state survive between frames:

  - Memory: which widget holds keyboard focus and which popup is open.
    Changes apply immediately, within the frame that makes them.
  - StateStore: per-widget values such as a TextEditState. A widget loads
    its value when drawn and stores it back at the end. FrameStore is a
    typed variant that forgets entries of widgets no longer drawn.

# Text Editing

TextEdit edits a caller-owned string:

	out := gui.SingleLine(&name).DesiredWidth(240).Show(ctx)

out.Response reports focus edges (GainedFocus, LostFocus) and TextChanged;
out.State is the cursor and selection after the frame. To change the
selection from outside, modify the state and Store it:

	if out.Response.GainedFocus {
	    out.State.SelectAll(utf8.RuneCountInString(name))
	    out.State.Store(ctx, out.Response.ID)
	}

Keyboard shortcuts while focused:

	Left / Right          Move one character
	Ctrl+Left / Right     Move one word
	Home / End            Jump to start / end
	Shift+movement        Extend the selection
	Ctrl+A                Select all
	Ctrl+C / X / V        Copy / cut / paste (see ClipboardProvider)
	Ctrl+Z                Undo
	Ctrl+Y, Ctrl+Shift+Z  Redo
	Backspace / Delete    Delete a character, or a word with Ctrl
	Enter / Escape        Give up focus

# Popups

A popup is opened through Memory and drawn with PopupBelow, which attaches
it under an anchor widget, draws it above everything else, and scrolls its
contents beyond WithMaxHeight:

	if resp.Clicked {
	    ctx.Memory().TogglePopup(menu)
	}
	ctx.PopupBelow(menu, resp, func() {
	    for _, item := range items {
	        if ctx.Selectable(item, false).Clicked {
	            pick(item)
	        }
	    }
	})

Escape, or a click outside the popup and the anchor, closes it.

# Layout

Widgets flow top to bottom. VStack, HStack and Panel group them; SameLine
puts the next widget to the right of the previous one.

	ctx.HStack(gui.Gap(8))(func() {
	    ctx.Text("Country")
	    ctx.Button("Clear")
	})

# Widget Options

Widgets take functional options:

	WithID(id)          Identity independent of the label
	WithWidth(w)        Fixed width
	WithHeight(h)       Fixed height
	WithDisabled(b)     Grey out and ignore input
	WithHint(s)         Placeholder of an empty text field
	WithMaxHeight(h)    Scroll beyond this height
	WithTextColor(c)    Override the text color

Packages built on gui declare their own keys with NewOptKey and read them
with ApplyAndGet.

# Logging

The package logs focus changes, popup transitions, clicks and frame starts
at debug level through log/slog. SetVerbose(true) enables them; SetLogger
replaces the logger.
*/
package gui
