package diff

import (
	"fmt"

	"github.com/diffsight/pkg/models"
)

// CalculateStats tallies a tagged line list by change type.
func CalculateStats(lines []models.DiffLine) models.DiffStats {
	var stats models.DiffStats
	for _, line := range lines {
		switch line.Type {
		case models.Added:
			stats.Additions++
		case models.Removed:
			stats.Deletions++
		case models.Unchanged:
			stats.Unchanged++
		}
	}
	return stats
}

// FormatStats renders a short summary badge: "+3, -1", "+3", "-1", or
// "No changes". Unchanged lines never appear in the badge.
func FormatStats(stats models.DiffStats) string {
	switch {
	case stats.Additions > 0 && stats.Deletions > 0:
		return fmt.Sprintf("+%d, -%d", stats.Additions, stats.Deletions)
	case stats.Additions > 0:
		return fmt.Sprintf("+%d", stats.Additions)
	case stats.Deletions > 0:
		return fmt.Sprintf("-%d", stats.Deletions)
	default:
		return "No changes"
	}
}
