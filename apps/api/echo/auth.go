package echoapi

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/mediaeduka/webramadhan/core"
	"github.com/mediaeduka/webramadhan/core/staff"
	"github.com/mediaeduka/webramadhan/core/student"
)

var (
	// appJWTConfig is the default JWT auth middleware config; the
	// signing key and expiration deltas come from initJWTConfig.
	appJWTConfig = middleware.JWTConfig{
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "userToken",
		Claims:        new(Claims),
	}

	appName            string
	jwtExpirationDelta time.Duration
	jwtRefreshDelta    time.Duration
)

func initJWTConfig(conf *core.Config) {
	appJWTConfig.SigningKey = []byte(conf.SecretKey)
	appName = conf.AppName
	jwtExpirationDelta = conf.Server.JWTExpirationDelta
	jwtRefreshDelta = conf.Server.JWTRefreshExpirationDelta
}

// Claims represents the authorization claims transmitted via a JWT.
// Subject carries the staff or student ID; the two portals are told
// apart by the IsTeacher/IsStudent flags.
type Claims struct {
	jwt.StandardClaims
	OrigIssuedAt int64  `json:"oriat,omitempty"`
	Name         string `json:"name,omitempty"`
	Username     string `json:"username,omitempty"`
	Class        string `json:"class,omitempty"`
	IsStudent    bool   `json:"is_student,omitempty"`
	IsTeacher    bool   `json:"is_teacher,omitempty"`
}

func (c Claims) subjectID() int {
	id, _ := strconv.Atoi(c.Subject)
	return id
}

func newClaims(subject int, origIat ...int64) *Claims {
	now := time.Now()
	nownix := now.Unix()

	var oriat int64
	if len(origIat) > 0 {
		oriat = origIat[0]
	} else {
		oriat = nownix
	}

	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    appName,
			Subject:   strconv.Itoa(subject),
			ExpiresAt: now.Add(jwtExpirationDelta).Unix(),
			IssuedAt:  nownix,
		},
		OrigIssuedAt: oriat,
	}
}

func GetStaffClaims(stf staff.Staff, origIat ...int64) *Claims {
	claims := newClaims(stf.ID, origIat...)
	claims.Name = stf.Name
	claims.Username = stf.Username
	claims.IsTeacher = true
	return claims
}

func GetStudentClaims(std student.Student, origIat ...int64) *Claims {
	claims := newClaims(std.ID, origIat...)
	claims.Name = std.Name
	claims.Username = std.Username
	claims.Class = std.Class
	claims.IsStudent = true
	return claims
}

// authenticateStaff checks teacher credentials against the staff store.
func authenticateStaff(uname, pwd string, svc *staff.Service) (*Claims, error) {
	stf, err := svc.GetByUsername(uname)
	if err != nil {
		if err == staff.ErrNotFound {
			return nil, errAuthenticationFailed
		}
		return nil, errors.Wrap(err, "finding staff by username")
	}
	if err = stf.CheckPassword(pwd); err != nil {
		return nil, errAuthenticationFailed
	}
	stf, err = svc.SetLastLogin(stf)
	if err != nil {
		return nil, errors.Wrap(err, "setting lastLogin")
	}
	return GetStaffClaims(stf), nil
}

// authenticateStudent looks up a student by username only; students
// have no passwords, enrollment is the credential.
func authenticateStudent(uname string, svc *student.Service) (*Claims, student.Student, error) {
	std, err := svc.GetByUsername(uname)
	if err != nil {
		if err == student.ErrNotFound {
			return nil, student.Student{}, errUsernameUnknown
		}
		return nil, student.Student{}, errors.Wrap(err, "finding student by username")
	}
	return GetStudentClaims(std), std, nil
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey.([]byte))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func refreshToken(ctx echo.Context) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting context claims")
	}

	// check if refresh has not expired
	expTime := time.Unix(claims.OrigIssuedAt, 0).Add(jwtRefreshDelta)
	if time.Now().After(expTime) {
		return "", errRefreshExpired
	}

	now := time.Now()
	claims.Id = uuid.New().String()
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(jwtExpirationDelta).Unix()

	token, err := GenerateToken(&claims)
	return token, errors.Wrap(err, "generating token")
}
