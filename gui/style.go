package gui

import "strings"

// Style is the look of every widget drawn through a Context.
type Style struct {
	TextColor          uint32
	TextDisabledColor  uint32
	TextHighlightColor uint32
	HintTextColor      uint32

	PanelColor         uint32
	PanelBorderColor   uint32
	PanelHeaderBgColor uint32

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32
	InputFocusedBorder  uint32
	TextSelectionColor  uint32
	CursorColor         uint32

	PopupBgColor     uint32
	PopupBorderColor uint32

	SeparatorColor uint32

	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Text is drawn in CharWidth x CharHeight cells, scaled by FontScale.
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32
	PopupPadding  float32

	BorderSize    float32
	ScrollbarSize float32
}

// DefaultStyle is a neutral dark theme sized for the 7x13 built-in font.
func DefaultStyle() Style {
	return Style{
		TextColor:          ColorWhite,
		TextDisabledColor:  ColorGray,
		TextHighlightColor: ColorYellow,
		HintTextColor:      RGBA(120, 120, 120, 255),

		PanelColor:         RGBA(20, 20, 20, 200),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),
		InputFocusedBorder:  RGBA(90, 140, 200, 255),
		TextSelectionColor:  RGBA(50, 100, 150, 180),
		CursorColor:         ColorWhite,

		PopupBgColor:     RGBA(25, 25, 25, 250),
		PopupBorderColor: RGBA(90, 90, 90, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		FontScale:  1,
		CharWidth:  7,
		CharHeight: 13,

		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,
		PopupPadding:  4,

		BorderSize:    1,
		ScrollbarSize: 12,
	}
}

// GTAStyle is black panels with cyan accents and yellow headers.
func GTAStyle() Style {
	s := DefaultStyle()
	s.TextHighlightColor = RGBA(255, 200, 0, 255)
	s.PanelColor = RGBA(0, 0, 0, 220)
	s.PanelBorderColor = RGBA(100, 100, 100, 255)
	s.PanelHeaderBgColor = RGBA(0, 60, 90, 255)
	s.ButtonColor = RGBA(40, 40, 40, 255)
	s.ButtonHoveredColor = RGBA(60, 80, 100, 255)
	s.ButtonActiveColor = RGBA(0, 150, 200, 255)
	s.SelectedBgColor = RGBA(0, 120, 180, 255)
	s.HoveredBgColor = RGBA(50, 70, 90, 255)
	s.InputBgColor = RGBA(20, 20, 20, 255)
	s.InputFocusedBgColor = RGBA(30, 40, 50, 255)
	s.InputBorderColor = RGBA(0, 100, 150, 255)
	s.InputFocusedBorder = RGBA(0, 200, 255, 255)
	s.TextSelectionColor = RGBA(0, 120, 180, 180)
	s.CursorColor = RGBA(255, 200, 0, 255)
	s.PopupBgColor = RGBA(10, 10, 10, 250)
	s.PopupBorderColor = RGBA(0, 150, 200, 255)
	s.SeparatorColor = RGBA(0, 150, 200, 128)
	s.ScrollbarBgColor = RGBA(20, 20, 20, 255)
	s.ScrollbarGrabColor = RGBA(0, 100, 150, 255)
	s.ScrollbarGrabHovered = RGBA(0, 150, 200, 255)
	s.ItemSpacing = 6
	s.PanelPadding = 12
	s.ButtonPadding = 8
	s.InputPadding = 6
	s.ScrollbarSize = 14
	return s
}

// LightStyle is dark text on light panels.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.TextHighlightColor = RGBA(0, 100, 200, 255)
	s.HintTextColor = RGBA(160, 160, 160, 255)
	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	s.PanelHeaderBgColor = RGBA(220, 220, 225, 255)
	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.ButtonDisabledColor = RGBA(230, 230, 230, 255)
	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.HoveredBgColor = RGBA(225, 225, 225, 255)
	s.InputBgColor = ColorWhite
	s.InputFocusedBgColor = ColorWhite
	s.InputBorderColor = RGBA(180, 180, 180, 255)
	s.InputFocusedBorder = RGBA(0, 120, 215, 255)
	s.TextSelectionColor = RGBA(0, 120, 215, 120)
	s.CursorColor = RGBA(20, 20, 20, 255)
	s.PopupBgColor = RGBA(250, 250, 250, 255)
	s.PopupBorderColor = RGBA(180, 180, 180, 255)
	s.SeparatorColor = RGBA(200, 200, 200, 255)
	s.ScrollbarBgColor = RGBA(235, 235, 235, 255)
	s.ScrollbarGrabColor = RGBA(190, 190, 190, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)
	return s
}

// StyleByName returns one of the built-in styles: "default", "gta" or "light".
func StyleByName(name string) (Style, bool) {
	switch strings.ToLower(name) {
	case "", "default", "dark":
		return DefaultStyle(), true
	case "gta":
		return GTAStyle(), true
	case "light":
		return LightStyle(), true
	}
	return Style{}, false
}
