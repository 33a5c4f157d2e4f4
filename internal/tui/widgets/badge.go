// ABOUTME: Inline badge widgets for navigation counts and status levels
// ABOUTME: Colored lipgloss pills used in the header and lists

package widgets

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg, fg lipgloss.Color

	switch level {
	case StatusOK:
		bg, fg = BadgeOKBg, BadgeOKFg
	case StatusWarning:
		bg, fg = BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		bg, fg = BadgeCritBg, BadgeCritFg
	case StatusInfo:
		bg, fg = BadgeInfoBg, BadgeInfoFg
	default:
		bg, fg = BadgeNeutralBg, BadgeNeutralFg
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// CountBadge renders an unread-count pill, or "" when the count is zero
// so a quiet inbox shows no badge at all
func CountBadge(count int) string {
	if count <= 0 {
		return ""
	}
	return Badge(strconv.Itoa(count), StatusCritical)
}

// StatusBadge renders a badge for an invite or request status string
func StatusBadge(status string) string {
	switch status {
	case "accepted":
		return Badge("accepted", StatusOK)
	case "rejected":
		return Badge("rejected", StatusCritical)
	case "pending", "invited":
		return Badge(status, StatusInfo)
	default:
		return Badge(status, StatusNeutral)
	}
}

// PriorityBadge renders a task priority pill
func PriorityBadge(priority string) string {
	switch priority {
	case "high":
		return Badge("high", StatusCritical)
	case "medium":
		return Badge("med", StatusWarning)
	case "low":
		return Badge("low", StatusNeutral)
	default:
		return Badge(priority, StatusNeutral)
	}
}
