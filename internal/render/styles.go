package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/GregMSThompson/factcheck/internal/models"
)

var (
	badge = lipgloss.NewStyle().Bold(true).Padding(0, 2)

	ratingStyles = map[models.Rating]lipgloss.Style{
		models.RatingTrue:          badge.Background(lipgloss.Color("#16a34a")).Foreground(lipgloss.Color("#dcfce7")),
		models.RatingPartiallyTrue: badge.Background(lipgloss.Color("#ca8a04")).Foreground(lipgloss.Color("#fef9c3")),
		models.RatingMisleading:    badge.Background(lipgloss.Color("#ea580c")).Foreground(lipgloss.Color("#ffedd5")),
		models.RatingFalse:         badge.Background(lipgloss.Color("#dc2626")).Foreground(lipgloss.Color("#fee2e2")),
		models.RatingUnverifiable:  badge.Background(lipgloss.Color("#475569")).Foreground(lipgloss.Color("#f1f5f9")),
	}

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f1f5f9"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e2e8f0")).MarginTop(1)
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cbd5e1"))
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")).Underline(true)
	uriStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569")).
			Padding(1, 2)
	errorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#b91c1c")).
			Foreground(lipgloss.Color("#fca5a5")).
			Padding(0, 2)
)

// Variant returns the rating whose visual style is used for r. Anything outside
// the five known ratings is shown as Unverifiable.
func Variant(r models.Rating) models.Rating {
	if r.Known() {
		return r
	}
	return models.RatingUnverifiable
}

func StyleFor(r models.Rating) lipgloss.Style {
	return ratingStyles[Variant(r)]
}
