package diff

import "github.com/diffsight/pkg/models"

// Collapse folds long runs of consecutive unchanged lines into a single
// marker carrying the hidden-line count, keeping contextSize lines visible
// on each side of every change. Runs of 2*contextSize or fewer lines are
// emitted as-is. Added and removed lines always pass through verbatim, and
// the relative order of everything emitted is preserved. A negative
// contextSize is treated as 0.
func Collapse(lines []models.DiffLine, contextSize int) []models.DisplayItem {
	if contextSize < 0 {
		contextSize = 0
	}

	items := make([]models.DisplayItem, 0, len(lines))
	var run []models.DiffLine

	flush := func() {
		if len(run) <= 2*contextSize {
			for _, l := range run {
				items = append(items, displayLine(l))
			}
		} else {
			for _, l := range run[:contextSize] {
				items = append(items, displayLine(l))
			}
			items = append(items, models.DisplayItem{
				Type:  models.Collapsed,
				Count: len(run) - 2*contextSize,
			})
			for _, l := range run[len(run)-contextSize:] {
				items = append(items, displayLine(l))
			}
		}
		run = run[:0]
	}

	for _, line := range lines {
		if line.Type == models.Unchanged {
			run = append(run, line)
			continue
		}
		flush()
		items = append(items, displayLine(line))
	}
	flush()
	return items
}

func displayLine(line models.DiffLine) models.DisplayItem {
	return models.DisplayItem{
		Type:          line.Type,
		Content:       line.Content,
		OldLineNumber: line.OldLineNumber,
		NewLineNumber: line.NewLineNumber,
	}
}
