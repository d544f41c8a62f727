package tests

import (
	"net/http"
	"testing"

	echoapi "github.com/mediaeduka/webramadhan/apps/api/echo"
	"github.com/mediaeduka/webramadhan/core/board"
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/student"
)

func submitGraded(t *testing.T, std student.Student, points int) journal.Entry {
	t.Helper()
	ent, err := journalSvc.Submit(std.ID, std.Name, journal.NewEntry{Class: std.Class})
	if err != nil {
		t.Fatalf("journalSvc.Submit(): %v", err)
	}
	ent, err = journalSvc.Grade(ent.ID, journal.GradeEntry{Points: &points, TeacherNote: "Ok"})
	if err != nil {
		t.Fatalf("journalSvc.Grade(): %v", err)
	}
	return ent
}

func Test_boardApi_retrieve(t *testing.T) {
	setup(t)

	t.Run("empty board, no auth needed", func(t *testing.T) {
		tt := httpTest{
			method: http.MethodGet, path: "/v1/board", wantCode: http.StatusOK,
			wantData: marchallObj(t, echoapi.BoardResponse{Leaderboard: []board.ClassRank{}}),
		}
		req, rec := newRequest(tt.method, tt.path)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	ahmad := createStudent(t, "Ahmad Fauzi", "ahmad", "Kelas 4")
	siti := createStudent(t, "Siti Aminah", "siti", "Kelas 5")
	putra := createStudent(t, "Putra Galuh", "putra", "Kelas 5")

	submitGraded(t, ahmad, 80)
	submitGraded(t, siti, 10)
	submitGraded(t, siti, 15) // accumulates to 25
	submitGraded(t, putra, 20)

	// a pending entry never counts, whatever its class
	if _, err := journalSvc.Submit(putra.ID, putra.Name, journal.NewEntry{Class: putra.Class}); err != nil {
		t.Fatalf("journalSvc.Submit(): %v", err)
	}

	t.Run("per-class tops and overall winner", func(t *testing.T) {
		kelas4 := board.ClassRank{Class: "Kelas 4", TopStudent: board.TopStudent{Name: "Ahmad Fauzi", Points: 80}}
		kelas5 := board.ClassRank{Class: "Kelas 5", TopStudent: board.TopStudent{Name: "Siti Aminah", Points: 25}}

		tt := httpTest{
			method: http.MethodGet, path: "/v1/board", wantCode: http.StatusOK,
			wantData: marchallObj(t, echoapi.BoardResponse{
				Leaderboard:   []board.ClassRank{kelas4, kelas5},
				OverallWinner: &kelas4,
			}),
		}
		req, rec := newRequest(tt.method, tt.path)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
