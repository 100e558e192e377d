package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
// Following 4px base unit for consistent spacing
const (
	// Spacing units (based on 4px)
	SpaceNone = 0
	SpaceXS   = 1 // 4px
	SpaceSM   = 2 // 8px
	SpaceMD   = 3 // 12px
	SpaceLG   = 4 // 16px

	// Component dimensions
	MinBlockHeight = 3
	SwatchWidth    = 14
	SwatchHeight   = 3
	SwatchGap      = SpaceSM
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#4ADE80",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#CA8A04",
		Dark:  "#FACC15",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#111827",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#1F2937",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#374151",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#4B5563",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextTertiary = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
)

// Blank is the block color shown when there is no current color.
const Blank = "#000000"

// SurfaceHex returns the hex of the surface color for the active background,
// for blending disabled swatches into it.
func SurfaceHex() string {
	if lipgloss.HasDarkBackground() {
		return ColorSurface.Dark
	}
	return ColorSurface.Light
}

// Base Styles - Foundation for all components
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextTertiaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextTertiary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Component Styles - Reusable component definitions
var (
	// Status Bar Styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	// Button Styles
	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceSM).
			Background(ColorText).
			Foreground(ColorBackground).
			Bold(true)

	ButtonDisabledStyle = ButtonStyle.
				Background(ColorTextTertiary).
				Foreground(ColorSurfaceAlt).
				Bold(false)

	// Swatch label styles
	SwatchLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	SwatchLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	SwatchLabelDisabledStyle = lipgloss.NewStyle().
					Foreground(ColorTextTertiary)

	// Title Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Overlay Styles
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorSurface).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextTertiary).Italic(true)
)
