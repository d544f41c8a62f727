package spreadsheetsvc

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mediaeduka/webramadhan/core/export"
)

func TestWriteSheet(t *testing.T) {
	sheet := export.Sheet{
		Name:   "Rekap",
		Header: []string{"No", "Nama Siswa", "Poin"},
		Rows: [][]interface{}{
			{1, "Ahmad Fauzi", 80},
			{2, "Siti Aminah", 25},
		},
	}

	var buf bytes.Buffer
	if err := WriteSheet(&buf, sheet); err != nil {
		t.Fatalf("WriteSheet(): %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("excelize.OpenReader(): %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(f.GetActiveSheetIndex()); got != "Rekap" {
		t.Errorf("sheet name = %q; want %q", got, "Rekap")
	}

	cells := map[string]string{
		"A1": "No", "B1": "Nama Siswa", "C1": "Poin",
		"A2": "1", "B2": "Ahmad Fauzi", "C2": "80",
		"A3": "2", "B3": "Siti Aminah", "C3": "25",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue("Rekap", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q; want %q", cell, got, want)
		}
	}
}
