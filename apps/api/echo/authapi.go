package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mediaeduka/webramadhan/core"
	"github.com/mediaeduka/webramadhan/core/staff"
	"github.com/mediaeduka/webramadhan/core/student"
)

type authApi struct {
	staffSvc   *staff.Service
	studentSvc *student.Service
	validate   *validator.Validate
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := authApi{
		staffSvc:   deps.StaffSvc,
		studentSvc: deps.StudentSvc,
		validate:   deps.Validate,
	}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.POST("/student-login", api.studentLogin)
	ag.POST("/token-refresh", api.refreshToken, jwt)
}

// login authenticates a teacher account with username and password.
func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := authenticateStaff(data.Username, data.Password, api.staffSvc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Name: claims.Name})
}

// studentLogin authenticates a student by username only.
func (api *authApi) studentLogin(ctx echo.Context) error {
	var data StudentLoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentLoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, std, err := authenticateStudent(data.Username, api.studentSvc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, StudentLoginResponse{Token: token, Student: std})
}

func (api *authApi) refreshToken(ctx echo.Context) error {
	token, err := refreshToken(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	StudentLoginRequest struct {
		Username string `json:"username" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Name  string `json:"name"`
	}

	StudentLoginResponse struct {
		Token   string          `json:"token"`
		Student student.Student `json:"student"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Username = core.CleanString(lr.Username, true /* lower */)
	return validate.Struct(lr)
}

func (slr *StudentLoginRequest) Validate(validate *validator.Validate) error {
	slr.Username = core.CleanString(slr.Username, true /* lower */)
	return validate.Struct(slr)
}
