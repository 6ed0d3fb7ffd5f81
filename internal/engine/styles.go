package engine

import (
	"github.com/oyeong011/go-dday/internal/config"
)

// DisplayStyle selects which derived text the compact tray label shows.
type DisplayStyle string

const (
	DisplayPercent DisplayStyle = config.StylePercent
	DisplayDDay    DisplayStyle = config.StyleDDay
)

// AllDisplayStyles is the canonical presentation order.
var AllDisplayStyles = []DisplayStyle{DisplayPercent, DisplayDDay}

// ParseDisplayStyle maps a stored code to a style, substituting the default
// for unknown or missing values.
func ParseDisplayStyle(code string) DisplayStyle {
	switch DisplayStyle(code) {
	case DisplayPercent, DisplayDDay:
		return DisplayStyle(code)
	default:
		return DisplayPercent
	}
}

// TitleKey returns the translation key for the style's human-readable title.
func (s DisplayStyle) TitleKey() string {
	if s == DisplayDDay {
		return config.TKeyStyleDDay
	}
	return config.TKeyStylePercent
}

// IconStyle selects the glyph sequence used for the animated tray icon.
type IconStyle string

const (
	IconPie       IconStyle = config.IconPie
	IconClock     IconStyle = config.IconClock
	IconBattery   IconStyle = config.IconBattery
	IconHourglass IconStyle = config.IconHourglass
	IconMoon      IconStyle = config.IconMoon
)

// AllIconStyles is the canonical presentation order.
var AllIconStyles = []IconStyle{IconPie, IconClock, IconBattery, IconHourglass, IconMoon}

// iconFrames maps each style to its ordered, non-empty glyph sequence.
var iconFrames = map[IconStyle][]string{
	IconPie:       {"◔", "◑", "◕", "●"},
	IconClock:     {"🕛", "🕕"},
	IconBattery:   {"▁", "▂", "▄", "▆", "█"},
	IconHourglass: {"⧖", "⧗", "⌛"},
	IconMoon:      {"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"},
}

// titleKeys maps each style to the translation key of its title.
var titleKeys = map[IconStyle]string{
	IconPie:       config.TKeyIconPie,
	IconClock:     config.TKeyIconClock,
	IconBattery:   config.TKeyIconBattery,
	IconHourglass: config.TKeyIconHourglass,
	IconMoon:      config.TKeyIconMoon,
}

// ParseIconStyle maps a stored code to a style, substituting the default
// for unknown or missing values.
func ParseIconStyle(code string) IconStyle {
	if _, ok := iconFrames[IconStyle(code)]; ok {
		return IconStyle(code)
	}
	return IconPie
}

// Frames returns the ordered glyph sequence for the style.
func (s IconStyle) Frames() []string {
	if frames, ok := iconFrames[s]; ok {
		return frames
	}
	return iconFrames[IconPie]
}

// FrameCount returns the length of the style's glyph sequence.
func (s IconStyle) FrameCount() int {
	return len(s.Frames())
}

// TitleKey returns the translation key for the style's human-readable title.
func (s IconStyle) TitleKey() string {
	if key, ok := titleKeys[s]; ok {
		return key
	}
	return config.TKeyIconPie
}

// AdvanceFrame increments the animation counter modulo the frame count.
func AdvanceFrame(style IconStyle, frameIndex int) int {
	n := style.FrameCount()
	return ((frameIndex+1)%n + n) % n
}

// CurrentIconFrame selects the glyph to display. The base position tracks
// yearProgress so the icon visibly advances across the year; the animation
// index cycles it additively modulo the frame count for a live look.
func CurrentIconFrame(style IconStyle, yearProgress float64, frameIndex int) string {
	frames := style.Frames()
	n := len(frames)

	base := int(yearProgress * float64(n-1))
	if base < 0 {
		base = 0
	}
	if base > n-1 {
		base = n - 1
	}

	return frames[((base+frameIndex)%n+n)%n]
}
