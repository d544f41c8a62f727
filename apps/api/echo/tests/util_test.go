package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	echoapi "github.com/mediaeduka/webramadhan/apps/api/echo"
	"github.com/mediaeduka/webramadhan/core"
	"github.com/mediaeduka/webramadhan/core/grade"
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/staff"
	"github.com/mediaeduka/webramadhan/core/student"
	logsvc "github.com/mediaeduka/webramadhan/services/logger"
	inmemdb "github.com/mediaeduka/webramadhan/storage/database/inmem"
)

var (
	conf *core.Config
	app  echoapi.Server

	studentSvc *student.Service
	staffSvc   *staff.Service
	journalSvc *journal.Service
	gradeSvc   *grade.Service

	errMissingToken     = httpErr{Error: "missing or malformed jwt"}
	errPermissionDenied = httpErr{Error: "permission denied"}
	errNotFound         = httpErr{Error: "not found"}
)

func newTestConfig() *core.Config {
	c := &core.Config{
		TestMode:  true,
		Env:       "TEST",
		AppName:   "Pesantren Ramadhan",
		SecretKey: "t3st-s3cret-k3y",
	}
	c.Server.ShutdownTimeout = 5 * time.Second
	c.Server.JWTExpirationDelta = 10 * time.Minute
	c.Server.JWTRefreshExpirationDelta = 4 * time.Hour
	return c
}

// setup rebuilds the store, services and server so each test starts
// from an empty state.
func setup(t *testing.T) {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	studentSvc = student.NewService(inmemdb.NewStudentRepository(db))
	staffSvc = staff.NewService(inmemdb.NewStaffRepository(db))
	journalSvc = journal.NewService(inmemdb.NewJournalRepository(db))
	gradeSvc = grade.NewService(inmemdb.NewGradeRepository(db))

	app = echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)),
			Validate:   validate,
			Translator: translator,
			StudentSvc: studentSvc,
			StaffSvc:   staffSvc,
			JournalSvc: journalSvc,
			GradeSvc:   gradeSvc,
		},
	)
}

func createStaff(t *testing.T) staff.Staff {
	t.Helper()
	stf, err := staffSvc.Create(staff.NewStaff{Name: "Bapak/Ibu Guru", Username: "guru", Password: "admin123"})
	if err != nil {
		t.Fatalf("staffSvc.Create(): %v", err)
	}
	return stf
}

func createStudent(t *testing.T, name, uname, class string) student.Student {
	t.Helper()
	std, err := studentSvc.Create(student.NewStudent{Name: name, Username: uname, Class: class})
	if err != nil {
		t.Fatalf("studentSvc.Create(%s): %v", uname, err)
	}
	return std
}

func getStaffToken(t *testing.T, stf staff.Staff) string {
	t.Helper()
	token, err := echoapi.GenerateToken(echoapi.GetStaffClaims(stf))
	if err != nil {
		t.Fatalf("getStaffToken(): %v", err)
	}
	return token
}

func getStudentToken(t *testing.T, std student.Student) string {
	t.Helper()
	token, err := echoapi.GenerateToken(echoapi.GetStudentClaims(std))
	if err != nil {
		t.Fatalf("getStudentToken(): %v", err)
	}
	return token
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
