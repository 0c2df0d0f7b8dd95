// Package collect defines the boundary with post collectors. Scraping
// itself lives outside this repo; what crosses the boundary is a batch
// of RawPost records.
package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spacesedan/tidewatch/internal/models"
)

// Collector produces a batch of raw posts for classification.
type Collector interface {
	Collect(ctx context.Context) ([]models.RawPost, error)
}

// FileCollector reads a JSON array of RawPost records, the handover
// format written by the external scraper.
type FileCollector struct {
	Path string
}

func (f FileCollector) Collect(ctx context.Context) ([]models.RawPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read posts file: %w", err)
	}

	var posts []models.RawPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode posts file %s: %w", f.Path, err)
	}
	return posts, nil
}

// ParseCount parses scraper-style engagement strings like "1.2K" or
// "5M" into integers. Unparseable input counts as zero, matching the
// safe-default rule for malformed records.
func ParseCount(s string) int {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if s == "" {
		return 0
	}

	multiplier := 1.0
	switch {
	case strings.Contains(s, "K"):
		multiplier = 1_000
		s = strings.ReplaceAll(s, "K", "")
	case strings.Contains(s, "M"):
		multiplier = 1_000_000
		s = strings.ReplaceAll(s, "M", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(v * multiplier)
}
