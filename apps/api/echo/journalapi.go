package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mediaeduka/webramadhan/core"
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/student"
)

type journalApi struct {
	svc      *journal.Service
	validate *validator.Validate
}

func registerJournalAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := journalApi{svc: deps.JournalSvc, validate: deps.Validate}

	jg := g.Group("/journals", jwt)
	jg.GET("", api.query)
	jg.POST("", api.create, studentMiddleware())
	jg.PUT("/:id/grade", api.grade, teacherMiddleware())

	tg := g.Group("/teacher-journals", jwt, teacherMiddleware())
	tg.GET("", api.queryTeacher)
	tg.POST("", api.createTeacher)
}

// query lists journals newest-first. Students only ever see their own;
// teachers see everything, optionally narrowed to one class.
func (api *journalApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var entries []journal.Entry
	switch {
	case claims.IsStudent:
		entries, err = api.svc.FilterByStudent(claims.subjectID())
	case claims.IsTeacher:
		if class := core.CleanString(ctx.QueryParam("class")); class != "" {
			if !student.ValidClass(class) {
				return core.NewValidationError(nil, core.FieldError{Field: "class", Error: "invalid class"})
			}
			entries, err = api.svc.FilterByClass(class)
		} else {
			entries, err = api.svc.QueryAll()
		}
	default:
		return errHTTPForbidden
	}
	if err != nil {
		return errors.Wrap(err, "querying journals")
	}
	return ctx.JSON(http.StatusOK, entries)
}

// create files today's journal for the authenticated student.
func (api *journalApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data journal.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ent, err := api.svc.Submit(claims.subjectID(), claims.Name, data)
	if err != nil {
		return errors.Wrap(err, "submitting journal")
	}
	return ctx.JSON(http.StatusCreated, ent)
}

// grade applies the teacher's verdict to one entry; re-grading an
// already graded entry simply overwrites the verdict.
func (api *journalApi) grade(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}

	var data journal.GradeEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradeEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ent, err := api.svc.Grade(id, data)
	if err != nil {
		if errors.Cause(err) == journal.ErrNotFound {
			return errHTTPNotFound
		}
		return errors.Wrap(err, "grading journal")
	}
	return ctx.JSON(http.StatusOK, ent)
}

func (api *journalApi) queryTeacher(ctx echo.Context) error {
	var entries []journal.TeacherEntry
	var err error

	if class := core.CleanString(ctx.QueryParam("class")); class != "" {
		if !student.ValidClass(class) {
			return core.NewValidationError(nil, core.FieldError{Field: "class", Error: "invalid class"})
		}
		entries, err = api.svc.FilterTeacherByClass(class)
	} else {
		entries, err = api.svc.QueryAllTeacher()
	}
	if err != nil {
		return errors.Wrap(err, "querying teacher journals")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *journalApi) createTeacher(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data journal.NewTeacherEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacherEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ent, err := api.svc.SubmitTeacher(claims.Name, data)
	if err != nil {
		return errors.Wrap(err, "submitting teacher journal")
	}
	return ctx.JSON(http.StatusCreated, ent)
}
