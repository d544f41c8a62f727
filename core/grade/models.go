package grade

import (
	"math"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/mediaeduka/webramadhan/core"
)

// Categories is the fixed set of scored assessment categories. The
// final grade always divides by len(Categories), filled or not.
var Categories = []string{"sholat", "tadarus", "doa", "asmaul", "btq", "akhlak", "peduli"}

// CategoryLabels maps category keys to their report-sheet headers, in
// Categories order.
var CategoryLabels = map[string]string{
	"sholat":  "Sholat Dhuha",
	"tadarus": "Tadarus",
	"doa":     "Hafalan Doa",
	"asmaul":  "Asmaul Husna",
	"btq":     "BTQ",
	"akhlak":  "Akhlak",
	"peduli":  "Kepedulian",
}

// NoteField is the one non-numeric field a record carries alongside the
// scored categories.
const NoteField = "note"

// ValidCategory reports whether cat is a scored category or the note field.
func ValidCategory(cat string) bool {
	if cat == NoteField {
		return true
	}
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Record is one student's sparse score sheet. It is created lazily on
// the first score entry and extended in place; absent categories count
// as zero.
type Record struct {
	StudentID int                `json:"student_id"`
	Scores    map[string]float64 `json:"scores"`
	Note      string             `json:"note"`
}

// Score returns the stored value for a category, zero when absent.
func (rec Record) Score(cat string) float64 {
	return rec.Scores[cat]
}

// Final computes the composite grade: the seven category scores summed
// (missing ones as zero) divided by seven, rounded to one decimal. The
// denominator is fixed regardless of how many categories are filled.
func (rec Record) Final() float64 {
	var total float64
	for _, cat := range Categories {
		total += rec.Scores[cat]
	}
	avg := total / float64(len(Categories))
	return math.Round(avg*10) / 10
}

// FinalString renders Final with one decimal place, as printed on the
// report sheet.
func (rec Record) FinalString() string {
	return strconv.FormatFloat(rec.Final(), 'f', 1, 64)
}

// UpsertGrade is one cell edit on the score sheet: a single category
// (or the note field) for a single student.
type UpsertGrade struct {
	Category string `json:"category" validate:"required,gradecat"`
	Value    string `json:"value"`
}

func (ug *UpsertGrade) Validate(validate *validator.Validate) error {
	ug.Category = core.CleanString(ug.Category, true /* lower */)
	return validate.Struct(ug)
}

// ParseScore coerces a raw score input to a number; anything that does
// not parse counts as zero rather than failing.
func ParseScore(raw string) float64 {
	v, err := strconv.ParseFloat(core.CleanString(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

var (
	gradeCatTag  = "gradecat"
	gradeCatText = "invalid grade category"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(gradeCatTag, gradeCatValidation)
	core.RegisterCustomTranslation(validate, translator, gradeCatTag, gradeCatText)
}

func gradeCatValidation(fl validator.FieldLevel) bool {
	return ValidCategory(fl.Field().String())
}
