package diff

import "github.com/diffsight/pkg/models"

// GenerateWordDiff computes an inline, word-level diff of oldText against
// newText. Segment values keep the token text verbatim (word plus its
// trailing whitespace), so concatenating the unchanged-and-removed segments
// reconstructs oldText and the unchanged-and-added segments reconstruct
// newText.
func GenerateWordDiff(oldText, newText string) []models.WordSegment {
	ops := align(splitWords(oldText), splitWords(newText))

	segments := make([]models.WordSegment, 0, len(ops))
	for _, op := range ops {
		var t models.ChangeType
		switch op.kind {
		case alignMatch:
			t = models.Unchanged
		case alignDelete:
			t = models.Removed
		case alignInsert:
			t = models.Added
		}
		segments = append(segments, models.WordSegment{Type: t, Value: op.token})
	}
	return segments
}
