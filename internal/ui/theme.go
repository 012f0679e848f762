package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bonfire theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBonfire = "🔥"
	IconSouls   = "💠"
	IconHP      = "❤️"
	IconXP      = "⚡"
	IconSkull   = "💀"
	IconFlask   = "🧪"
	IconHollow  = "🕳️"
	IconHabit   = "🔁"
	IconDaily   = "📅"
	IconTodo    = "🗡️"
	IconReward  = "🎁"
	IconDone    = "✅"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconShop    = "🛒"
	IconShield  = "🛡️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("208") // ember orange
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeDowned  = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("YOU DIED")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a simple filled/empty meter like `███░░░ 25/50`.
func Bar(current, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	filled := current * width / max
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) +
		fmt.Sprintf(" %d/%d", current, max)
}

func TaskIcon(taskType string) string {
	switch taskType {
	case "habit":
		return IconHabit
	case "daily":
		return IconDaily
	case "todo":
		return IconTodo
	default:
		return IconReward
	}
}
