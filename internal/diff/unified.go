package diff

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/diffsight/pkg/models"
)

// Example: @@ -12,5 +12,7 @@ optional section heading
// The line counts are optional; "@@ -1 +1 @@" is valid.
var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// IsUnifiedDiff reports whether text looks like a unified diff: at minimum
// a ---/+++ file-header pair and one @@ hunk header. It never fails on
// arbitrary text.
func IsUnifiedDiff(text string) bool {
	var hasOld, hasNew, hasHunk bool
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "--- "):
			hasOld = true
		case strings.HasPrefix(line, "+++ "):
			hasNew = true
		case hunkHeaderRe.MatchString(line):
			hasHunk = true
		}
		if hasOld && hasNew && hasHunk {
			return true
		}
	}
	return false
}

// ExtractFilePaths reads the first "--- <path>" and "+++ <path>" header
// lines of a unified diff, stripping the conventional a/ and b/ prefixes.
// Both paths are nil unless both header lines are present.
func ExtractFilePaths(diffText string) models.FilePaths {
	var oldPath, newPath *string
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case oldPath == nil && strings.HasPrefix(line, "--- "):
			p := cleanHeaderPath(line[4:])
			oldPath = &p
		case newPath == nil && strings.HasPrefix(line, "+++ "):
			p := cleanHeaderPath(line[4:])
			newPath = &p
		}
		if oldPath != nil && newPath != nil {
			return models.FilePaths{OldPath: oldPath, NewPath: newPath}
		}
	}
	return models.FilePaths{}
}

// cleanHeaderPath trims a header path down to the bare file name: drops a
// trailing tab-separated timestamp (classic diff emits one) and the a/ or
// b/ prefix git puts in front.
func cleanHeaderPath(p string) string {
	if tab := strings.IndexByte(p, '\t'); tab >= 0 {
		p = p[:tab]
	}
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "a/") || strings.HasPrefix(p, "b/") {
		p = p[2:]
	}
	return p
}

// ParseUnifiedDiff parses unified-diff text into hunks of numbered, tagged
// lines, one hunk per @@ header in source order. Body lines are classified
// by their leading character (' ', '-', '+'); line numbers count up from
// the header's oldStart/newStart independently per hunk. A hunk's extent
// comes from the header's line counts, so a removed line whose content
// itself starts with "-- " parses as a removal, not as a file header, and
// text after a hunk's counts are spent is not attributed to it. Text
// outside any hunk, malformed hunk headers, and unrecognized body lines
// (e.g. the "\ No newline at end of file" marker) are skipped, so
// arbitrary input yields an empty hunk list rather than an error.
func ParseUnifiedDiff(diffText string) []models.DiffHunk {
	hunks := []models.DiffHunk{}
	cur := -1 // index into hunks, -1 when outside any hunk
	var oldLine, newLine int
	var oldLeft, newLeft int

	for _, line := range splitLines(diffText) {
		if m := hunkHeaderRe.FindStringSubmatch(line); m != nil {
			oldStart, _ := strconv.Atoi(m[1])
			newStart, _ := strconv.Atoi(m[3])
			hunks = append(hunks, models.DiffHunk{OldStart: oldStart, NewStart: newStart})
			cur = len(hunks) - 1
			oldLine = oldStart - 1
			newLine = newStart - 1
			oldLeft = headerCount(m[2])
			newLeft = headerCount(m[4])
			continue
		}
		if cur >= 0 && oldLeft == 0 && newLeft == 0 {
			cur = -1
		}
		if cur < 0 {
			continue
		}

		var tagged models.DiffLine
		switch {
		case line == "" || line[0] == ' ':
			// Some tools emit empty context lines without the leading space.
			oldLine++
			newLine++
			oldLeft = decrement(oldLeft)
			newLeft = decrement(newLeft)
			tagged = models.DiffLine{
				Type:          models.Unchanged,
				Content:       strings.TrimPrefix(line, " "),
				OldLineNumber: oldLine,
				NewLineNumber: newLine,
			}
		case line[0] == '-':
			oldLine++
			oldLeft = decrement(oldLeft)
			tagged = models.DiffLine{
				Type:          models.Removed,
				Content:       line[1:],
				OldLineNumber: oldLine,
			}
		case line[0] == '+':
			newLine++
			newLeft = decrement(newLeft)
			tagged = models.DiffLine{
				Type:          models.Added,
				Content:       line[1:],
				NewLineNumber: newLine,
			}
		default:
			continue
		}
		hunks[cur].Lines = append(hunks[cur].Lines, tagged)
	}
	return hunks
}

// headerCount reads an optional line count from a hunk header capture; the
// unified format defaults an omitted count to 1.
func headerCount(capture string) int {
	if capture == "" {
		return 1
	}
	n, _ := strconv.Atoi(capture)
	return n
}

func decrement(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}
