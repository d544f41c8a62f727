package echoapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mediaeduka/webramadhan/core"
	"github.com/mediaeduka/webramadhan/core/export"
	"github.com/mediaeduka/webramadhan/core/grade"
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/student"
	spreadsheetsvc "github.com/mediaeduka/webramadhan/services/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportApi struct {
	studentSvc *student.Service
	journalSvc *journal.Service
	gradeSvc   *grade.Service
}

func registerExportAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := exportApi{
		studentSvc: deps.StudentSvc,
		journalSvc: deps.JournalSvc,
		gradeSvc:   deps.GradeSvc,
	}

	eg := g.Group("/export", jwt, teacherMiddleware())
	eg.GET("/journals", api.journals)
	eg.GET("/teacher-journals", api.teacherJournals)
	eg.GET("/grades", api.grades)
}

// journals downloads the per-class student journal rekap.
func (api *exportApi) journals(ctx echo.Context) error {
	class, err := requiredClass(ctx)
	if err != nil {
		return err
	}

	entries, err := api.journalSvc.FilterByClass(class)
	if err != nil {
		return errors.Wrap(err, "querying journals")
	}
	return writeSheet(ctx, export.JournalSheet(entries), "Rekap_Jurnal_Siswa_"+class)
}

// teacherJournals downloads the per-class lesson-log rekap.
func (api *exportApi) teacherJournals(ctx echo.Context) error {
	class, err := requiredClass(ctx)
	if err != nil {
		return err
	}

	entries, err := api.journalSvc.FilterTeacherByClass(class)
	if err != nil {
		return errors.Wrap(err, "querying teacher journals")
	}
	return writeSheet(ctx, export.TeacherJournalSheet(entries), "Rekap_Jurnal_Guru_"+class)
}

// grades downloads the per-class score-sheet rekap.
func (api *exportApi) grades(ctx echo.Context) error {
	class, err := requiredClass(ctx)
	if err != nil {
		return err
	}

	students, err := api.studentSvc.FilterByClass(class)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	allRecords, err := api.gradeSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying grade records")
	}
	records := make(map[int]grade.Record, len(allRecords))
	for _, rec := range allRecords {
		records[rec.StudentID] = rec
	}

	return writeSheet(ctx, export.GradeSheet(students, records), "Rekap_Daftar_Nilai_"+class)
}

func requiredClass(ctx echo.Context) (string, error) {
	class := core.CleanString(ctx.QueryParam("class"))
	if !student.ValidClass(class) {
		return "", core.NewValidationError(nil, core.FieldError{Field: "class", Error: "invalid class"})
	}
	return class, nil
}

func writeSheet(ctx echo.Context, sheet export.Sheet, fileName string) error {
	var buf bytes.Buffer
	if err := spreadsheetsvc.WriteSheet(&buf, sheet); err != nil {
		return errors.Wrap(err, "serializing workbook")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName+".xlsx"))
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
