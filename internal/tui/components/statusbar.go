package components

import (
	"strings"

	"colorcycle/internal/tui/design"
	"colorcycle/internal/tui/model"
	"colorcycle/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		Width: width,
	}
}

// WithMessage sets a status message
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	inner := s.Width - style.GetHorizontalPadding()

	var content string
	switch {
	case s.ShowMessage:
		content = utils.TruncateString(s.Message, inner)
	case s.LeftText != "" && s.RightText != "":
		leftWidth := lipgloss.Width(s.LeftText)
		rightWidth := lipgloss.Width(s.RightText)
		if padding := inner - leftWidth - rightWidth; padding > 0 {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			// Not enough space, just show left text
			content = utils.TruncateString(s.LeftText, inner)
		}
	case s.LeftText != "":
		content = utils.TruncateString(s.LeftText, inner)
	default:
		content = utils.TruncateString(s.RightText, inner)
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
