package models

// ChangeType classifies a line or inline segment in a computed diff.
type ChangeType string

const (
	Added     ChangeType = "added"
	Removed   ChangeType = "removed"
	Unchanged ChangeType = "unchanged"

	// Collapsed is only ever carried by a DisplayItem, never by a DiffLine
	// or WordSegment.
	Collapsed ChangeType = "collapsed"
)

// DiffLine is a single line of a line-level diff. Line numbers are 1-based;
// OldLineNumber is set for removed and unchanged lines, NewLineNumber for
// added and unchanged lines, and 0 means the line has no position on that
// side. JSON field names match what the diff views render.
type DiffLine struct {
	Type          ChangeType `json:"type"`
	Content       string     `json:"content"`
	OldLineNumber int        `json:"oldLineNumber,omitempty"`
	NewLineNumber int        `json:"newLineNumber,omitempty"`
}

// WordSegment is one inline segment of a word-level diff. Value keeps the
// token text verbatim, including any whitespace attached to it, so that
// concatenating all segments of one side reconstructs that side's input.
type WordSegment struct {
	Type  ChangeType `json:"type"`
	Value string     `json:"value"`
}

// DiffHunk is one @@-delimited block of a parsed unified diff. OldStart and
// NewStart come from the hunk header; Lines carry absolute line numbers
// seeded from those offsets.
type DiffHunk struct {
	OldStart int        `json:"oldStart"`
	NewStart int        `json:"newStart"`
	Lines    []DiffLine `json:"lines"`
}

// DiffStats are per-diff line counts. They are always recomputed from a
// DiffLine list, never mutated in place.
type DiffStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Unchanged int `json:"unchanged"`
}

// DisplayItem is one entry of a collapsed diff view: either a DiffLine
// (Type added/removed/unchanged, with the line fields populated) or a
// collapse marker (Type Collapsed, Count holding how many unchanged lines
// were folded away).
type DisplayItem struct {
	Type          ChangeType `json:"type"`
	Content       string     `json:"content,omitempty"`
	OldLineNumber int        `json:"oldLineNumber,omitempty"`
	NewLineNumber int        `json:"newLineNumber,omitempty"`
	Count         int        `json:"count,omitempty"`
}

// FilePaths are the file names read from a unified diff's ---/+++ header
// pair. Both are nil when either header line is missing or unparsable.
type FilePaths struct {
	OldPath *string `json:"oldPath"`
	NewPath *string `json:"newPath"`
}
