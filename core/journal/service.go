package journal

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("journal entry not found")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		// CreateEntry prepends; the collection is kept newest-first and
		// every read preserves that order.
		CreateEntry(ent Entry) (Entry, error)
		QueryAllEntries() ([]Entry, error)
		GetEntryByID(id int) (Entry, error)
		FilterEntriesByClass(class string) ([]Entry, error)
		FilterEntriesByStudent(studentID int) ([]Entry, error)
		// UpdateEntryGrade overwrites points and teacher note in place
		// and marks the entry graded. The entry keeps its slot.
		UpdateEntryGrade(id, points int, teacherNote string) (Entry, error)

		CreateTeacherEntry(ent TeacherEntry) (TeacherEntry, error)
		QueryAllTeacherEntries() ([]TeacherEntry, error)
		FilterTeacherEntriesByClass(class string) ([]TeacherEntry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit files a new Pending entry for the given student, dated today.
func (svc *Service) Submit(studentID int, studentName string, ne NewEntry) (Entry, error) {
	ent := Entry{
		StudentID:   studentID,
		StudentName: studentName,
		Class:       ne.Class,
		Date:        FormatDate(nowFunc()),
		Checklist:   ne.Checklist,
		Note:        ne.Note,
		Points:      0,
		TeacherNote: "",
		Status:      StatusPending,
	}
	return svc.repo.CreateEntry(ent)
}

// Grade applies the teacher's verdict to one entry. Grading an already
// graded entry is allowed and simply overwrites the previous verdict.
func (svc *Service) Grade(id int, ge GradeEntry) (Entry, error) {
	if _, err := svc.repo.GetEntryByID(id); err != nil {
		return Entry{}, err
	}
	return svc.repo.UpdateEntryGrade(id, *ge.Points, ge.TeacherNote)
}

func (svc *Service) QueryAll() ([]Entry, error) {
	return svc.repo.QueryAllEntries()
}

func (svc *Service) GetByID(id int) (Entry, error) {
	return svc.repo.GetEntryByID(id)
}

func (svc *Service) FilterByClass(class string) ([]Entry, error) {
	return svc.repo.FilterEntriesByClass(class)
}

func (svc *Service) FilterByStudent(studentID int) ([]Entry, error) {
	return svc.repo.FilterEntriesByStudent(studentID)
}

// SubmitTeacher files a new lesson-log record. Records are immutable
// once filed.
func (svc *Service) SubmitTeacher(teacherName string, nte NewTeacherEntry) (TeacherEntry, error) {
	date := nte.Date
	if date == "" {
		date = nowFunc().Format("2006-01-02")
	}
	ent := TeacherEntry{
		Class:       nte.Class,
		TeacherName: teacherName,
		Date:        date,
		Tema:        nte.Tema,
		Tujuan:      nte.Tujuan,
		Aktivitas:   nte.Aktivitas,
		Metode:      nte.Metode,
		Hasil:       nte.Hasil,
		Refleksi:    nte.Refleksi,
	}
	return svc.repo.CreateTeacherEntry(ent)
}

func (svc *Service) QueryAllTeacher() ([]TeacherEntry, error) {
	return svc.repo.QueryAllTeacherEntries()
}

func (svc *Service) FilterTeacherByClass(class string) ([]TeacherEntry, error) {
	return svc.repo.FilterTeacherEntriesByClass(class)
}
