package diff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffsight/pkg/models"
)

func TestGenerateLineDiffIdentity(t *testing.T) {
	text := "alpha\nbeta\ngamma\n"
	result := GenerateLineDiff(text, text)

	assert.Equal(t, models.DiffStats{Unchanged: 3}, result.Stats)
	require.Len(t, result.Lines, 3)
	for i, line := range result.Lines {
		assert.Equal(t, models.Unchanged, line.Type)
		assert.Equal(t, i+1, line.OldLineNumber)
		assert.Equal(t, i+1, line.NewLineNumber)
	}
}

func TestGenerateLineDiffEmptyInputs(t *testing.T) {
	result := GenerateLineDiff("", "")
	assert.Empty(t, result.Lines)
	assert.Equal(t, models.DiffStats{}, result.Stats)
	assert.Equal(t, "No changes", FormatStats(result.Stats))
}

func TestGenerateLineDiffAllAdded(t *testing.T) {
	result := GenerateLineDiff("", "a\nb\n")
	want := []models.DiffLine{
		{Type: models.Added, Content: "a", NewLineNumber: 1},
		{Type: models.Added, Content: "b", NewLineNumber: 2},
	}
	assert.Equal(t, want, result.Lines)
	assert.Equal(t, models.DiffStats{Additions: 2}, result.Stats)
}

func TestGenerateLineDiffAppend(t *testing.T) {
	result := GenerateLineDiff("line1\nline2\n", "line1\nline2\nline3\n")

	want := []models.DiffLine{
		{Type: models.Unchanged, Content: "line1", OldLineNumber: 1, NewLineNumber: 1},
		{Type: models.Unchanged, Content: "line2", OldLineNumber: 2, NewLineNumber: 2},
		{Type: models.Added, Content: "line3", NewLineNumber: 3},
	}
	if diff := cmp.Diff(want, result.Lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, models.DiffStats{Additions: 1, Unchanged: 2}, result.Stats)
	assert.Equal(t, "+1", FormatStats(result.Stats))
}

func TestGenerateLineDiffReplacementOrder(t *testing.T) {
	result := GenerateLineDiff("one\ntwo\nthree\n", "one\n2\nthree\n")

	want := []models.DiffLine{
		{Type: models.Unchanged, Content: "one", OldLineNumber: 1, NewLineNumber: 1},
		{Type: models.Removed, Content: "two", OldLineNumber: 2},
		{Type: models.Added, Content: "2", NewLineNumber: 2},
		{Type: models.Unchanged, Content: "three", OldLineNumber: 3, NewLineNumber: 3},
	}
	assert.Equal(t, want, result.Lines)
}

func TestGenerateLineDiffTrailingNewlineIrrelevant(t *testing.T) {
	with := GenerateLineDiff("a\nb\n", "a\nc\n")
	without := GenerateLineDiff("a\nb", "a\nc")
	assert.Equal(t, with, without)
}

// Line numbers must be 1-based and strictly increasing per side no matter
// how the changes interleave.
func TestGenerateLineDiffNumberingMonotonic(t *testing.T) {
	result := GenerateLineDiff(
		"a\nb\nc\nd\ne\nf\n",
		"a\nx\nc\ny\nz\nf\n",
	)

	prevOld, prevNew := 0, 0
	for _, line := range result.Lines {
		if line.Type != models.Added {
			require.Greater(t, line.OldLineNumber, prevOld)
			prevOld = line.OldLineNumber
		}
		if line.Type != models.Removed {
			require.Greater(t, line.NewLineNumber, prevNew)
			prevNew = line.NewLineNumber
		}
	}
	assert.Equal(t, 6, prevOld)
	assert.Equal(t, 6, prevNew)
}
