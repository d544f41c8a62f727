package journal

import (
	"fmt"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/mediaeduka/webramadhan/core"
)

// Status of a journal entry. There is no transition back to Pending;
// re-grading a graded entry only overwrites its points and note.
type Status string

const (
	StatusPending Status = "Pending"
	StatusGraded  Status = "Dinilai"
)

// Amalan is the fixed vocabulary of worship activities a student may
// tick off on the daily checklist.
var Amalan = []string{"Shalat 5 Waktu", "Puasa", "Tadarus", "Shalat Tarawih", "Shalat Dhuha", "Sedekah"}

// ValidAmalan reports whether item is in the checklist vocabulary.
func ValidAmalan(item string) bool {
	for _, a := range Amalan {
		if a == item {
			return true
		}
	}
	return false
}

// Entry is one student's daily ibadah log.
//
// StudentName is a display snapshot taken at submission time; it
// survives roster deletions and renames so historical views and the
// leaderboard keep showing the name under which the entry was filed.
type Entry struct {
	ID          int      `json:"id"`
	StudentID   int      `json:"student_id"`
	StudentName string   `json:"student_name"`
	Class       string   `json:"class"`
	Date        string   `json:"date"`
	Checklist   []string `json:"checklist"`
	Note        string   `json:"note"`
	Points      int      `json:"points"`
	TeacherNote string   `json:"teacher_note"`
	Status      Status   `json:"status"`
}

// NewEntry contains information a student submits for a daily journal.
// The author's identity comes from the session, not the payload.
type NewEntry struct {
	Class     string   `json:"class" validate:"required,kelas"`
	Checklist []string `json:"checklist" validate:"omitempty,dive,amalan"`
	Note      string   `json:"note"`
}

func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.Class = core.CleanString(ne.Class)
	ne.Note = core.CleanString(ne.Note)
	return validate.Struct(ne)
}

// GradeEntry is the teacher's verdict on a single journal entry.
type GradeEntry struct {
	Points      *int   `json:"points" validate:"required,min=0,max=100"`
	TeacherNote string `json:"teacher_note" validate:"required"`
}

func (ge *GradeEntry) Validate(validate *validator.Validate) error {
	ge.TeacherNote = core.CleanString(ge.TeacherNote)
	return validate.Struct(ge)
}

// TeacherEntry is a teacher's lesson-log record. Immutable once created.
type TeacherEntry struct {
	ID          int    `json:"id"`
	Class       string `json:"class"`
	TeacherName string `json:"teacher_name"`
	Date        string `json:"date"`
	Tema        string `json:"tema"`
	Tujuan      string `json:"tujuan"`
	Aktivitas   string `json:"aktivitas"`
	Metode      string `json:"metode"`
	Hasil       string `json:"hasil"`
	Refleksi    string `json:"refleksi"`
}

// NewTeacherEntry contains information a teacher submits for the lesson
// log. Date defaults to today when omitted.
type NewTeacherEntry struct {
	Class     string `json:"class" validate:"required,kelas"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Tema      string `json:"tema" validate:"required"`
	Tujuan    string `json:"tujuan"`
	Aktivitas string `json:"aktivitas"`
	Metode    string `json:"metode"`
	Hasil     string `json:"hasil"`
	Refleksi  string `json:"refleksi"`
}

func (nte *NewTeacherEntry) Validate(validate *validator.Validate) error {
	nte.Class = core.CleanString(nte.Class)
	nte.Tema = core.CleanString(nte.Tema)
	return validate.Struct(nte)
}

var (
	hariNames = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

	bulanNames = []string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// FormatDate renders t as a long Indonesian calendar date,
// e.g. "Senin, 2 Maret 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", hariNames[int(t.Weekday())], t.Day(), bulanNames[int(t.Month())-1], t.Year())
}

var (
	amalanTag  = "amalan"
	amalanText = "invalid checklist item"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(amalanTag, amalanValidation)
	core.RegisterCustomTranslation(validate, translator, amalanTag, amalanText)
}

// amalanValidation checks that a checklist item is in Amalan.
func amalanValidation(fl validator.FieldLevel) bool {
	return ValidAmalan(fl.Field().String())
}
