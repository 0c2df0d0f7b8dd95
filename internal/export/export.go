// Package export writes classification results to timestamped JSON
// and CSV files for downstream analysis.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/spacesedan/tidewatch/internal/models"
)

const keywordSeparator = "; "

var csvHeader = []string{
	"username", "handle", "content", "timestamp",
	"likes", "retweets", "replies", "post_id", "verified", "source",
	"matched_keywords", "hazard_category",
	"sentiment_score", "sentiment_label", "confidence",
}

// Writer saves posts and reports under a directory, stamping filenames
// with the injected clock.
type Writer struct {
	dir    string
	prefix string
	clock  clockwork.Clock
}

func NewWriter(dir, prefix string, clock clockwork.Clock) *Writer {
	return &Writer{dir: dir, prefix: prefix, clock: clock}
}

// Results holds the paths produced by one Save call.
type Results struct {
	PostsJSON   string
	AnalysisCSV string
	ReportJSON  string
}

// Save writes the annotated posts as JSON and CSV, and the report as
// JSON, returning the written paths.
func (w *Writer) Save(posts []models.AnnotatedPost, report *models.Report) (Results, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Results{}, fmt.Errorf("create output dir: %w", err)
	}

	stamp := w.clock.Now().Format("20060102_150405")
	results := Results{
		PostsJSON:   filepath.Join(w.dir, fmt.Sprintf("%s_posts_%s.json", w.prefix, stamp)),
		AnalysisCSV: filepath.Join(w.dir, fmt.Sprintf("%s_analysis_%s.csv", w.prefix, stamp)),
		ReportJSON:  filepath.Join(w.dir, fmt.Sprintf("%s_report_%s.json", w.prefix, stamp)),
	}

	if err := writeJSON(results.PostsJSON, posts); err != nil {
		return Results{}, err
	}
	if err := writeCSV(results.AnalysisCSV, posts); err != nil {
		return Results{}, err
	}
	if err := writeJSON(results.ReportJSON, report); err != nil {
		return Results{}, err
	}

	slog.Info("[Export] Results saved",
		slog.String("posts", results.PostsJSON),
		slog.String("analysis", results.AnalysisCSV),
		slog.String("report", results.ReportJSON))
	return results, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, posts []models.AnnotatedPost) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range posts {
		row := []string{
			p.Username,
			p.Handle,
			p.Content,
			p.Timestamp,
			strconv.Itoa(p.Likes),
			strconv.Itoa(p.Retweets),
			strconv.Itoa(p.Replies),
			p.PostID,
			strconv.FormatBool(p.Verified),
			p.Source,
			strings.Join(p.MatchedKeywords, keywordSeparator),
			p.HazardCategory,
			strconv.FormatFloat(p.SentimentScore, 'f', -1, 64),
			p.SentimentLabel,
			strconv.FormatFloat(p.Confidence, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
