package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mediaeduka/webramadhan/core"
	"github.com/mediaeduka/webramadhan/core/grade"
	"github.com/mediaeduka/webramadhan/core/student"
)

type gradeApi struct {
	svc        *grade.Service
	studentSvc *student.Service
	validate   *validator.Validate
}

func registerGradeAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := gradeApi{svc: deps.GradeSvc, studentSvc: deps.StudentSvc, validate: deps.Validate}

	gg := g.Group("/grades", jwt, teacherMiddleware())
	gg.GET("", api.query)
	gg.PUT("/:studentId", api.upsert)
}

// GradeRow is one line of the score sheet: the student, their sparse
// scores and the composite final grade.
type GradeRow struct {
	Student student.Student    `json:"student"`
	Scores  map[string]float64 `json:"scores"`
	Note    string             `json:"note"`
	Final   float64            `json:"final"`
}

// query builds the score sheet for one class (or the whole roster).
// Students without a record yet get an empty row with a zero final.
func (api *gradeApi) query(ctx echo.Context) error {
	var students []student.Student
	var err error

	if class := core.CleanString(ctx.QueryParam("class")); class != "" {
		if !student.ValidClass(class) {
			return core.NewValidationError(nil, core.FieldError{Field: "class", Error: "invalid class"})
		}
		students, err = api.studentSvc.FilterByClass(class)
	} else {
		students, err = api.studentSvc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	rows := make([]GradeRow, 0, len(students))
	for _, std := range students {
		rec, err := api.svc.Get(std.ID)
		if err != nil {
			return errors.Wrap(err, "getting grade record")
		}
		rows = append(rows, GradeRow{Student: std, Scores: rec.Scores, Note: rec.Note, Final: rec.Final()})
	}
	return ctx.JSON(http.StatusOK, rows)
}

// upsert applies one score-sheet cell edit for a student.
func (api *gradeApi) upsert(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("studentId"))
	if err != nil {
		return errHTTPNotFound
	}
	std, err := api.studentSvc.GetByID(id)
	if err != nil {
		if err == student.ErrNotFound {
			return errHTTPNotFound
		}
		return errors.Wrap(err, "getting student")
	}

	var data grade.UpsertGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpsertGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.svc.Upsert(id, data)
	if err != nil {
		return errors.Wrap(err, "upserting grade")
	}
	return ctx.JSON(http.StatusOK, GradeRow{Student: std, Scores: rec.Scores, Note: rec.Note, Final: rec.Final()})
}
