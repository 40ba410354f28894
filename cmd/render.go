package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/diffsight/internal/diff"
	"github.com/diffsight/pkg/models"
)

// writeStats emits a change summary in the requested output format: the
// stats object as JSON, or the FormatStats badge for pretty output.
func writeStats(w io.Writer, stats models.DiffStats, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(stats)
	case "pretty":
		_, err := fmt.Fprintln(w, diff.FormatStats(stats))
		return err
	default:
		return fmt.Errorf("invalid output format: %s (must be pretty or json)", format)
	}
}

// renderDisplay writes a line-diff view with a two-column line-number
// gutter: old number, new number, change marker, content. Collapse markers
// render as a centered summary row.
func renderDisplay(w io.Writer, items []models.DisplayItem) {
	width := gutterWidth(items)
	for _, item := range items {
		if item.Type == models.Collapsed {
			fmt.Fprintf(w, "%s ··· %d unchanged line%s ···\n",
				strings.Repeat(" ", 2*width+1), item.Count, plural(item.Count))
			continue
		}

		var marker byte
		switch item.Type {
		case models.Added:
			marker = '+'
		case models.Removed:
			marker = '-'
		default:
			marker = ' '
		}
		fmt.Fprintf(w, "%s %s %c %s\n",
			gutterNum(item.OldLineNumber, width),
			gutterNum(item.NewLineNumber, width),
			marker, item.Content)
	}
}

// renderHunk writes one parsed hunk: its @@ header followed by its lines.
func renderHunk(w io.Writer, hunk models.DiffHunk) {
	fmt.Fprintf(w, "@@ -%d +%d @@\n", hunk.OldStart, hunk.NewStart)

	items := make([]models.DisplayItem, 0, len(hunk.Lines))
	for _, line := range hunk.Lines {
		items = append(items, models.DisplayItem{
			Type:          line.Type,
			Content:       line.Content,
			OldLineNumber: line.OldLineNumber,
			NewLineNumber: line.NewLineNumber,
		})
	}
	renderDisplay(w, items)
}

// renderWordSegments formats an inline diff in the wdiff convention:
// removals in [-...-], additions in {+...+}.
func renderWordSegments(segments []models.WordSegment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch seg.Type {
		case models.Removed:
			sb.WriteString("[-")
			sb.WriteString(seg.Value)
			sb.WriteString("-]")
		case models.Added:
			sb.WriteString("{+")
			sb.WriteString(seg.Value)
			sb.WriteString("+}")
		default:
			sb.WriteString(seg.Value)
		}
	}
	return sb.String()
}

// gutterWidth is the digit width needed for the largest line number shown.
func gutterWidth(items []models.DisplayItem) int {
	max := 1
	for _, item := range items {
		if item.OldLineNumber > max {
			max = item.OldLineNumber
		}
		if item.NewLineNumber > max {
			max = item.NewLineNumber
		}
	}
	return len(fmt.Sprint(max))
}

// gutterNum right-aligns a line number, or blanks when the line has no
// position on that side.
func gutterNum(n, width int) string {
	if n == 0 {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, n)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
