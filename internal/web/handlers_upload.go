package web

// handlers_upload.go serves the two-step CSV import: preview, then confirm.
// Both read the whole file into memory; uploads are bounded by
// Import.MaxFileSize.

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/web/templates"
	"github.com/google/uuid"
)

// multipartOverhead leaves room for the form fields sent with the file.
const multipartOverhead = 64 << 10

// readUpload parses the multipart form and returns the "file" part.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (core.Upload, error) {
	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return core.Upload{}, core.ErrFileTooLarge
		}
		return core.Upload{}, badRequest("Invalid multipart form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return core.Upload{}, badRequest("No file provided")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return core.Upload{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxSize {
		return core.Upload{}, core.ErrFileTooLarge
	}
	return core.Upload{FileName: header.Filename, Data: data}, nil
}

// handlePreviewCSV returns the columns, first rows and row count of an
// uploaded CSV without storing anything.
func (s *Server) handlePreviewCSV(w http.ResponseWriter, r *http.Request) {
	upload, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	result, err := s.service.PreviewCSV(r.Context(), upload)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		templates.PreviewTable(result.Columns, result.SampleRows, result.TotalRows).Render(r.Context(), w)
		return
	}
	writeJSON(w, result)
}

// parseImportRequest reads the mapping and destination form fields.
func (s *Server) parseImportRequest(r *http.Request) (core.ImportRequest, error) {
	req := core.ImportRequest{
		Mapping: core.ColumnMapping{
			DateColumn:        r.FormValue("date_column"),
			AmountColumn:      r.FormValue("amount_column"),
			DescriptionColumn: r.FormValue("description_column"),
			DateFormat:        strings.TrimSpace(r.FormValue("date_format")),
		},
		CategoryID: r.FormValue("category_id"),
	}
	if req.Mapping.DateFormat == "" {
		req.Mapping.DateFormat = s.cfg.Import.DefaultDateFormat
	}

	var err error
	if req.IsIncome, err = formBool(r, "is_income"); err != nil {
		return req, err
	}
	if req.NegateAmounts, err = formBool(r, "negate_amounts"); err != nil {
		return req, err
	}
	if v := strings.TrimSpace(r.FormValue("household_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return req, badRequest("Invalid household_id")
		}
		req.HouseholdID = &id
	}
	return req, nil
}

// handleConfirmCSV imports every valid row of the upload into one category.
func (s *Server) handleConfirmCSV(w http.ResponseWriter, r *http.Request) {
	upload, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	req, err := s.parseImportRequest(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	outcome, err := s.service.ImportCSV(ctx, currentUser(r), upload, req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if isHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		templates.ImportSummary(outcome.Imported, outcome.Skipped, outcome.Errors).Render(r.Context(), w)
		return
	}
	writeJSON(w, outcome)
}

// handleImportHistory lists the caller's recent imports.
func (s *Server) handleImportHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	records, err := s.service.ImportHistory(r.Context(), currentUser(r), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, records)
}

// handleImportQueueStatus reports how many imports are running.
func (s *Server) handleImportQueueStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.ImportLimiterStatus())
}
