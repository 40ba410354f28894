package diff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffsight/pkg/models"
)

func unchangedRun(n, startAt int) []models.DiffLine {
	lines := make([]models.DiffLine, n)
	for i := range lines {
		lines[i] = models.DiffLine{
			Type:          models.Unchanged,
			Content:       fmt.Sprintf("ctx %d", startAt+i),
			OldLineNumber: startAt + i,
			NewLineNumber: startAt + i,
		}
	}
	return lines
}

func TestCollapseShortRunKeptVerbatim(t *testing.T) {
	// A run of exactly 2*contextSize is not worth hiding.
	lines := unchangedRun(6, 1)
	items := Collapse(lines, 3)

	require.Len(t, items, 6)
	for i, item := range items {
		assert.Equal(t, models.Unchanged, item.Type)
		assert.Equal(t, lines[i].Content, item.Content)
	}
}

func TestCollapseLongRun(t *testing.T) {
	lines := unchangedRun(10, 1)
	items := Collapse(lines, 3)

	require.Len(t, items, 7)
	assert.Equal(t, "ctx 1", items[0].Content)
	assert.Equal(t, "ctx 3", items[2].Content)
	assert.Equal(t, models.Collapsed, items[3].Type)
	assert.Equal(t, 4, items[3].Count)
	assert.Equal(t, "ctx 8", items[4].Content)
	assert.Equal(t, "ctx 10", items[6].Content)
}

func TestCollapseChangesPassThroughAndSplitRuns(t *testing.T) {
	var lines []models.DiffLine
	lines = append(lines, unchangedRun(5, 1)...)
	lines = append(lines, models.DiffLine{Type: models.Removed, Content: "gone", OldLineNumber: 6})
	lines = append(lines, models.DiffLine{Type: models.Added, Content: "here", NewLineNumber: 6})
	lines = append(lines, unchangedRun(5, 7)...)

	// contextSize 2: each 5-line run folds its middle line.
	items := Collapse(lines, 2)

	var types []models.ChangeType
	for _, item := range items {
		types = append(types, item.Type)
	}
	assert.Equal(t, []models.ChangeType{
		models.Unchanged, models.Unchanged, models.Collapsed, models.Unchanged, models.Unchanged,
		models.Removed, models.Added,
		models.Unchanged, models.Unchanged, models.Collapsed, models.Unchanged, models.Unchanged,
	}, types)
	assert.Equal(t, 1, items[2].Count)
	assert.Equal(t, 1, items[9].Count)
}

// Every input line is accounted for: it either appears verbatim or is
// counted by a collapse marker.
func TestCollapseConservation(t *testing.T) {
	var lines []models.DiffLine
	lines = append(lines, unchangedRun(12, 1)...)
	lines = append(lines, models.DiffLine{Type: models.Added, Content: "new", NewLineNumber: 13})
	lines = append(lines, unchangedRun(3, 14)...)
	lines = append(lines, models.DiffLine{Type: models.Removed, Content: "old", OldLineNumber: 17})
	lines = append(lines, unchangedRun(20, 18)...)

	for _, contextSize := range []int{0, 1, 2, 3, 10, 100} {
		items := Collapse(lines, contextSize)

		total := 0
		for _, item := range items {
			if item.Type == models.Collapsed {
				assert.Greater(t, item.Count, 0)
				total += item.Count
			} else {
				total++
			}
		}
		assert.Equal(t, len(lines), total, "contextSize=%d", contextSize)
	}
}

func TestCollapseMinimumRunLength(t *testing.T) {
	// 2*contextSize+1 is the shortest run that collapses, and it collapses
	// to a single hidden line.
	items := Collapse(unchangedRun(7, 1), 3)
	require.Len(t, items, 7)
	assert.Equal(t, models.Collapsed, items[3].Type)
	assert.Equal(t, 1, items[3].Count)
}

func TestCollapseNegativeContextTreatedAsZero(t *testing.T) {
	var lines []models.DiffLine
	lines = append(lines, unchangedRun(4, 1)...)
	lines = append(lines, models.DiffLine{Type: models.Added, Content: "x", NewLineNumber: 5})

	items := Collapse(lines, -7)
	require.Len(t, items, 2)
	assert.Equal(t, models.Collapsed, items[0].Type)
	assert.Equal(t, 4, items[0].Count)
	assert.Equal(t, models.Added, items[1].Type)
}

func TestCollapseEmptyInput(t *testing.T) {
	assert.Empty(t, Collapse(nil, 3))
}

func TestCollapsePreservesLineFields(t *testing.T) {
	lines := []models.DiffLine{
		{Type: models.Removed, Content: "bye", OldLineNumber: 4},
		{Type: models.Added, Content: "hi", NewLineNumber: 4},
	}
	items := Collapse(lines, 3)
	require.Len(t, items, 2)
	assert.Equal(t, models.DisplayItem{Type: models.Removed, Content: "bye", OldLineNumber: 4}, items[0])
	assert.Equal(t, models.DisplayItem{Type: models.Added, Content: "hi", NewLineNumber: 4}, items[1])
}
