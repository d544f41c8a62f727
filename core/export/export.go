// Package export flattens store contents into the tabular rekap
// projections the spreadsheet writer serializes. Builders are pure; the
// file mechanics live in services/spreadsheet.
package export

import (
	"strings"

	"github.com/mediaeduka/webramadhan/core/grade"
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/student"
)

// Sheet is one serializable table: a header row plus data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// JournalSheet flattens student journal entries, newest first, with a
// 1-based "No" index column.
func JournalSheet(entries []journal.Entry) Sheet {
	sheet := Sheet{
		Name:   "Rekap",
		Header: []string{"No", "Nama Siswa", "Tanggal", "Amalan", "Catatan Siswa", "Poin", "Catatan Guru", "Status"},
		Rows:   make([][]interface{}, 0, len(entries)),
	}
	for i, ent := range entries {
		sheet.Rows = append(sheet.Rows, []interface{}{
			i + 1,
			ent.StudentName,
			ent.Date,
			strings.Join(ent.Checklist, ", "),
			ent.Note,
			ent.Points,
			ent.TeacherNote,
			string(ent.Status),
		})
	}
	return sheet
}

// TeacherJournalSheet flattens lesson-log records, newest first.
func TeacherJournalSheet(entries []journal.TeacherEntry) Sheet {
	sheet := Sheet{
		Name:   "Rekap",
		Header: []string{"No", "Tanggal", "Tema", "Tujuan", "Aktivitas", "Metode", "Hasil", "Refleksi"},
		Rows:   make([][]interface{}, 0, len(entries)),
	}
	for i, ent := range entries {
		sheet.Rows = append(sheet.Rows, []interface{}{
			i + 1,
			ent.Date,
			ent.Tema,
			ent.Tujuan,
			ent.Aktivitas,
			ent.Metode,
			ent.Hasil,
			ent.Refleksi,
		})
	}
	return sheet
}

// GradeSheet builds the score sheet for the given students. Categories
// never filled in render as empty cells, matching the dashboard view;
// the final grade still counts them as zero.
func GradeSheet(students []student.Student, records map[int]grade.Record) Sheet {
	header := []string{"No", "Nama Murid"}
	for _, cat := range grade.Categories {
		header = append(header, grade.CategoryLabels[cat])
	}
	header = append(header, "Nilai Akhir", "Catatan Guru")

	sheet := Sheet{
		Name:   "Rekap",
		Header: header,
		Rows:   make([][]interface{}, 0, len(students)),
	}
	for i, std := range students {
		rec := records[std.ID]
		row := []interface{}{i + 1, std.Name}
		for _, cat := range grade.Categories {
			if score, ok := rec.Scores[cat]; ok {
				row = append(row, score)
			} else {
				row = append(row, "")
			}
		}
		row = append(row, rec.FinalString(), rec.Note)
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}
