package core

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestPreview(t *testing.T) {
	lines := []string{"Datum;Iznos;Opis"}
	for i := 1; i <= 8; i++ {
		lines = append(lines, fmt.Sprintf("%02d.01.2024;%d,00;Stavka %d", i, i*10, i))
	}
	result, err := Preview(csvUpload(lines...))
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}

	if !reflect.DeepEqual(result.Columns, []string{"Datum", "Iznos", "Opis"}) {
		t.Errorf("Columns = %v", result.Columns)
	}
	if len(result.SampleRows) != PreviewSampleSize {
		t.Errorf("len(SampleRows) = %d, want %d", len(result.SampleRows), PreviewSampleSize)
	}
	if result.TotalRows != 8 {
		t.Errorf("TotalRows = %d, want 8", result.TotalRows)
	}
	if got := result.SampleRows[0]["Opis"]; got != "Stavka 1" {
		t.Errorf("first sample Opis = %q", got)
	}
	if result.Encoding != "utf-8" {
		t.Errorf("Encoding = %q", result.Encoding)
	}
}

func TestPreview_HeaderOnly(t *testing.T) {
	result, err := Preview(csvUpload("Date,Amount,Description"))
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if result.TotalRows != 0 {
		t.Errorf("TotalRows = %d, want 0", result.TotalRows)
	}
	if result.SampleRows == nil || len(result.SampleRows) != 0 {
		t.Errorf("SampleRows = %#v, want empty non-nil slice", result.SampleRows)
	}
	if len(result.Columns) != 3 {
		t.Errorf("Columns = %v", result.Columns)
	}
}

func TestPreview_ShortRowHasEmptyValues(t *testing.T) {
	result, err := Preview(csvUpload("a;b;c", "1;2"))
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if got, ok := result.SampleRows[0]["c"]; !ok || got != "" {
		t.Errorf(`sample["c"] = %q, %v; want "" present`, got, ok)
	}
}

func TestPreview_Errors(t *testing.T) {
	tests := []struct {
		name    string
		upload  Upload
		wantErr error
	}{
		{
			name:    "not a csv name",
			upload:  Upload{FileName: "statement.xlsx", Data: []byte("a;b\n1;2")},
			wantErr: ErrNotCSV,
		},
		{
			name:    "no columns",
			upload:  Upload{FileName: "empty.csv", Data: []byte("\n\n")},
			wantErr: ErrNoColumnsDetected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Preview(tt.upload); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPreview_UppercaseExtension(t *testing.T) {
	if _, err := Preview(Upload{FileName: "IZVOD.CSV", Data: []byte("a;b\n1;2")}); err != nil {
		t.Errorf("Preview error: %v", err)
	}
}

func TestPreview_Idempotent(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	upload := csvUpload("Datum;Iznos", "01.01.2024;5", "02.01.2024;6")

	first, err := svc.PreviewCSV(context.Background(), upload)
	if err != nil {
		t.Fatalf("PreviewCSV error: %v", err)
	}
	second, err := svc.PreviewCSV(context.Background(), upload)
	if err != nil {
		t.Fatalf("PreviewCSV error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("previews differ: %+v vs %+v", first, second)
	}
}
