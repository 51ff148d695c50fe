// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Lead IDs, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Borders
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Selection indicator (the ">" prefix in lists and pickers)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	// Lead priority colors
	PriorityHighColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	PriorityMediumColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	PriorityLowColor    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	PriorityHighStyle   = lipgloss.NewStyle().Foreground(PriorityHighColor).Bold(true)
	PriorityMediumStyle = lipgloss.NewStyle().Foreground(PriorityMediumColor)
	PriorityLowStyle    = lipgloss.NewStyle().Foreground(PriorityLowColor)

	// Stage badge
	StageStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// List-level fetch error banner
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)

	// Loading spinner color
	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFF"}

	// Form field labels
	FormLabelColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormLabelFocusedColor = lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}
)

// PriorityStyle returns the style for a numeric priority.
func PriorityStyle(value int) lipgloss.Style {
	switch value {
	case 3:
		return PriorityHighStyle
	case 2:
		return PriorityMediumStyle
	default:
		return PriorityLowStyle
	}
}

// ApplyTheme applies custom theme colors from configuration.
// Empty strings are ignored, keeping the default values.
func ApplyTheme(muted, errorColor, success string) {
	if muted != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
		BorderDefaultColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
		ToastBorderErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
		ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
	}
}
