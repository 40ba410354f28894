package diff

import "github.com/diffsight/pkg/models"

// LineDiffResult pairs the tagged lines of a line-level diff with their
// stats summary.
type LineDiffResult struct {
	Lines []models.DiffLine `json:"lines"`
	Stats models.DiffStats  `json:"stats"`
}

// GenerateLineDiff computes a line-level diff of oldText against newText.
// The result is a flat list: every line of both inputs appears exactly
// once, tagged added, removed, or unchanged, with 1-based line numbers
// assigned independently per side. Empty inputs yield an empty list and
// zeroed stats.
func GenerateLineDiff(oldText, newText string) LineDiffResult {
	ops := align(splitLines(oldText), splitLines(newText))

	lines := make([]models.DiffLine, 0, len(ops))
	oldLine, newLine := 0, 0
	for _, op := range ops {
		switch op.kind {
		case alignMatch:
			oldLine++
			newLine++
			lines = append(lines, models.DiffLine{
				Type:          models.Unchanged,
				Content:       op.token,
				OldLineNumber: oldLine,
				NewLineNumber: newLine,
			})
		case alignDelete:
			oldLine++
			lines = append(lines, models.DiffLine{
				Type:          models.Removed,
				Content:       op.token,
				OldLineNumber: oldLine,
			})
		case alignInsert:
			newLine++
			lines = append(lines, models.DiffLine{
				Type:          models.Added,
				Content:       op.token,
				NewLineNumber: newLine,
			})
		}
	}

	return LineDiffResult{Lines: lines, Stats: CalculateStats(lines)}
}
