package core

import (
	"context"
	"strings"

	"github.com/JonMunkholm/budget/internal/logging"
)

// PreviewSampleSize is how many data rows a preview returns.
const PreviewSampleSize = 5

// Upload is a file received from a client.
type Upload struct {
	FileName string
	Data     []byte
}

// PreviewResult describes a CSV file without importing it.
type PreviewResult struct {
	Columns    []string            `json:"columns"`
	SampleRows []map[string]string `json:"sample_rows"`
	TotalRows  int                 `json:"total_rows"`
	Encoding   string              `json:"-"`
}

// Preview decodes and parses an upload and returns its columns, the first
// few rows and an approximate row count. It has no side effects.
func Preview(upload Upload) (*PreviewResult, error) {
	if !strings.HasSuffix(strings.ToLower(upload.FileName), ".csv") {
		return nil, ErrNotCSV
	}

	decoded, err := Decode(upload.Data)
	if err != nil {
		return nil, err
	}

	table, err := DetectTable(decoded.Text, "")
	if err != nil {
		return nil, err
	}

	samples := make([]map[string]string, 0, PreviewSampleSize)
	for _, row := range table.Rows {
		if len(samples) == PreviewSampleSize {
			break
		}
		sample := make(map[string]string, len(table.Columns))
		for _, col := range table.Columns {
			sample[col] = row.Get(col)
		}
		samples = append(samples, sample)
	}

	return &PreviewResult{
		Columns:    table.Columns,
		SampleRows: samples,
		TotalRows:  ApproxRowCount(decoded.Text),
		Encoding:   decoded.Encoding,
	}, nil
}

// PreviewCSV is Preview with request logging.
func (s *Service) PreviewCSV(ctx context.Context, upload Upload) (*PreviewResult, error) {
	result, err := Preview(upload)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug("csv preview",
		"file", upload.FileName,
		"encoding", result.Encoding,
		"columns", len(result.Columns),
		"total_rows", result.TotalRows,
	)
	return result, nil
}
