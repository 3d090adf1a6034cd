package gui

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4 // default item spacing
	SpaceMD   float32 = 8 // default panel padding
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
)

// Style defines the visual appearance of panels and widgets.
type Style struct {
	// Text
	TextColor         uint32 `toml:"text_color"`
	TextDisabledColor uint32 `toml:"text_disabled_color"`

	// Panel chrome
	PanelColor           uint32 `toml:"panel_color"`
	PanelBorderColor     uint32 `toml:"panel_border_color"`
	TitleBarColor        uint32 `toml:"title_bar_color"`
	TitleBarHoveredColor uint32 `toml:"title_bar_hovered_color"`
	TitleTextColor       uint32 `toml:"title_text_color"` // 0 = TextColor
	GripColor            uint32 `toml:"grip_color"`
	SnapGuideColor       uint32 `toml:"snap_guide_color"`

	// Buttons and toggles
	ButtonColor        uint32 `toml:"button_color"`
	ButtonHoveredColor uint32 `toml:"button_hovered_color"`
	ButtonActiveColor  uint32 `toml:"button_active_color"`
	CheckColor         uint32 `toml:"check_color"`

	// Slider
	SliderTrackColor uint32 `toml:"slider_track_color"`
	SliderFillColor  uint32 `toml:"slider_fill_color"`
	SliderGrabColor  uint32 `toml:"slider_grab_color"`
	SliderGrabActive uint32 `toml:"slider_grab_active"`

	// Scrollbar
	ScrollbarBgColor     uint32 `toml:"scrollbar_bg_color"`
	ScrollbarGrabColor   uint32 `toml:"scrollbar_grab_color"`
	ScrollbarGrabHovered uint32 `toml:"scrollbar_grab_hovered"`

	SeparatorColor uint32 `toml:"separator_color"`

	// Sizing
	TitleBarHeight float32 `toml:"title_bar_height"`
	PanelPadding   float32 `toml:"panel_padding"`
	ItemSpacing    float32 `toml:"item_spacing"`   // gap between items in rows and columns
	ButtonPadding  float32 `toml:"button_padding"`
	TextSpacing    float32 `toml:"text_spacing"`   // extra advance between glyphs
	IndentSize     float32 `toml:"indent_size"`
	BorderSize     float32 `toml:"border_size"`
	ScrollbarSize  float32 `toml:"scrollbar_size"`
	ScrollSpeed    float32 `toml:"scroll_speed"`   // pixels per wheel notch
	AnimationRate  float32 `toml:"animation_rate"` // hover/active easing, 1/seconds
	GripSize       float32 `toml:"grip_size"`
	MinPanelSize   Vec2    `toml:"min_panel_size"`
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:           RGBA(20, 20, 20, 200),
		PanelBorderColor:     RGBA(80, 80, 80, 255),
		TitleBarColor:        RGBA(40, 40, 45, 255),
		TitleBarHoveredColor: RGBA(55, 55, 65, 255),
		GripColor:            RGBA(90, 90, 90, 255),
		SnapGuideColor:       ColorCyan,

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),
		CheckColor:         RGBA(50, 100, 150, 255),

		SliderTrackColor: RGBA(40, 40, 40, 255),
		SliderFillColor:  RGBA(50, 100, 150, 255),
		SliderGrabColor:  RGBA(100, 100, 100, 255),
		SliderGrabActive: RGBA(140, 140, 140, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		TitleBarHeight: 20,
		PanelPadding:   SpaceMD,
		ItemSpacing:    SpaceSM,
		ButtonPadding:  SpaceXS + 1,
		TextSpacing:    0,
		IndentSize:     SpaceLG,
		BorderSize:     1,
		ScrollbarSize:  10,
		ScrollSpeed:    30,
		AnimationRate:  14,
		GripSize:       10,
		MinPanelSize:   Vec2{60, 40},
	}
}

// DarkStyle returns a darker, more opaque theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.TitleBarColor = RGBA(35, 35, 40, 255)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.CheckColor = RGBA(65, 105, 225, 255)
	s.SliderFillColor = s.CheckColor
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	s.TitleBarColor = RGBA(220, 220, 225, 255)
	s.TitleBarHoveredColor = RGBA(205, 205, 215, 255)
	s.TitleTextColor = RGBA(40, 40, 40, 255)
	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.CheckColor = RGBA(0, 120, 215, 255)
	s.SliderTrackColor = RGBA(220, 220, 220, 255)
	s.SliderFillColor = s.CheckColor
	s.SliderGrabColor = RGBA(180, 180, 180, 255)
	s.SliderGrabActive = RGBA(140, 140, 140, 255)
	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)
	s.SeparatorColor = RGBA(200, 200, 200, 255)
	return s
}

// titleTextColor resolves the title text color.
func (s *Style) titleTextColor() uint32 {
	if s.TitleTextColor != 0 {
		return s.TitleTextColor
	}
	return s.TextColor
}
