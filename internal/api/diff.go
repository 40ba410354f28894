package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/diffsight/internal/diff"
	"github.com/diffsight/pkg/models"
)

// diffRequest models the incoming POST payload for diff computations.
type diffRequest struct {
	Old  string `json:"old"`
	New  string `json:"new"`
	Mode string `json:"mode"` // "line" (default) or "word"
	// Context overrides the configured collapse context; nil keeps the
	// configured value, 0 disables the collapsed view.
	Context *int `json:"context"`
}

// lineDiffResponse is the line-mode result.
type lineDiffResponse struct {
	ID        string               `json:"id"`
	Lines     []models.DiffLine    `json:"lines"`
	Stats     models.DiffStats     `json:"stats"`
	Formatted string               `json:"formatted"`
	Display   []models.DisplayItem `json:"display,omitempty"`
}

// wordDiffResponse is the word-mode result.
type wordDiffResponse struct {
	ID       string               `json:"id"`
	Segments []models.WordSegment `json:"segments"`
}

// parseRequest models the incoming POST payload for unified-diff parsing.
type parseRequest struct {
	Diff string `json:"diff"`
}

// parseResponse is the parse result. Stats aggregate over all hunk lines.
type parseResponse struct {
	ID        string            `json:"id"`
	IsDiff    bool              `json:"is_diff"`
	OldPath   *string           `json:"old_path"`
	NewPath   *string           `json:"new_path"`
	Hunks     []models.DiffHunk `json:"hunks"`
	Stats     models.DiffStats  `json:"stats"`
	Formatted string            `json:"formatted"`
}

// computeDiff handles POST /api/v1/diff.
func (s *Server) computeDiff(c echo.Context) error {
	var req diffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	id := uuid.NewString()
	start := time.Now()

	switch req.Mode {
	case "", "line":
		result := diff.GenerateLineDiff(req.Old, req.New)

		resp := lineDiffResponse{
			ID:        id,
			Lines:     result.Lines,
			Stats:     result.Stats,
			Formatted: diff.FormatStats(result.Stats),
		}
		contextSize := s.cfg.Diff.Context
		if req.Context != nil {
			contextSize = *req.Context
		}
		if s.cfg.Diff.Collapse && contextSize > 0 {
			resp.Display = diff.Collapse(result.Lines, contextSize)
		}

		log.Info().
			Str("id", id).
			Str("mode", "line").
			Int("old_bytes", len(req.Old)).
			Int("new_bytes", len(req.New)).
			Int("lines", len(result.Lines)).
			Dur("elapsed", time.Since(start)).
			Msg("diff computed")
		return c.JSON(http.StatusOK, resp)

	case "word":
		segments := diff.GenerateWordDiff(req.Old, req.New)

		log.Info().
			Str("id", id).
			Str("mode", "word").
			Int("old_bytes", len(req.Old)).
			Int("new_bytes", len(req.New)).
			Int("segments", len(segments)).
			Dur("elapsed", time.Since(start)).
			Msg("diff computed")
		return c.JSON(http.StatusOK, wordDiffResponse{ID: id, Segments: segments})

	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "mode must be line or word"})
	}
}

// parseDiff handles POST /api/v1/parse. Input that is not a unified diff is
// not an error; the response just carries is_diff=false and no hunks.
func (s *Server) parseDiff(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	id := uuid.NewString()
	hunks := diff.ParseUnifiedDiff(req.Diff)
	paths := diff.ExtractFilePaths(req.Diff)

	var all []models.DiffLine
	for _, hunk := range hunks {
		all = append(all, hunk.Lines...)
	}
	stats := diff.CalculateStats(all)

	log.Info().
		Str("id", id).
		Int("diff_bytes", len(req.Diff)).
		Int("hunks", len(hunks)).
		Msg("diff parsed")

	return c.JSON(http.StatusOK, parseResponse{
		ID:        id,
		IsDiff:    diff.IsUnifiedDiff(req.Diff),
		OldPath:   paths.OldPath,
		NewPath:   paths.NewPath,
		Hunks:     hunks,
		Stats:     stats,
		Formatted: diff.FormatStats(stats),
	})
}
