package student

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/mediaeduka/webramadhan/core"
)

// Classes is the fixed vocabulary of class labels students may be
// assigned to.
var Classes = []string{"Kelas 1", "Kelas 2", "Kelas 3", "Kelas 4", "Kelas 5", "Kelas 6"}

// ValidClass reports whether cls is one of the six class labels.
func ValidClass(cls string) bool {
	for _, c := range Classes {
		if c == cls {
			return true
		}
	}
	return false
}

// Student is an enrolled participant of the Ramadan program.
type Student struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Class     string    `json:"class"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3,alphanum_"`
	Class    string `json:"class" validate:"required,kelas"`
}

func (ns *NewStudent) Validate(validate *validator.Validate, svc *Service) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Username = core.CleanString(ns.Username, true /* lower */)
	ns.Class = core.CleanString(ns.Class)

	if err := validate.Struct(ns); err != nil {
		return err
	}
	return svc.CheckUniqueness(ns.Username)
}

// UpdateStudent defines what information may be provided to modify an
// enrolled Student. Empty fields keep their current value.
type UpdateStudent struct {
	Name     string `json:"name"`
	Username string `json:"username" validate:"omitempty,min=3,alphanum_"`
	Class    string `json:"class" validate:"omitempty,kelas"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate, orig Student, svc *Service) error {
	if name := core.CleanString(us.Name); name != "" {
		us.Name = name
	} else {
		us.Name = orig.Name
	}

	if uname := core.CleanString(us.Username, true /* lower */); uname != "" {
		us.Username = uname
	} else {
		us.Username = orig.Username
	}

	if cls := core.CleanString(us.Class); cls != "" {
		us.Class = cls
	} else {
		us.Class = orig.Class
	}

	if err := validate.Struct(us); err != nil {
		return err
	}
	return svc.CheckUniqueness(us.Username, orig)
}

var (
	kelasTag  = "kelas"
	kelasText = "invalid class"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(kelasTag, kelasValidation)
	core.RegisterCustomTranslation(validate, translator, kelasTag, kelasText)
}

// kelasValidation checks that the provided class is in Classes.
func kelasValidation(fl validator.FieldLevel) bool {
	return ValidClass(fl.Field().String())
}
