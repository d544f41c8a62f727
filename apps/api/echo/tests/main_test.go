package tests

import (
	"os"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/mediaeduka/webramadhan/core"
	"github.com/mediaeduka/webramadhan/core/grade"
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/student"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func TestMain(m *testing.M) {
	conf = newTestConfig()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")

	validate = validator.New()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	journal.InitValidators(validate, translator)
	grade.InitValidators(validate, translator)

	os.Exit(m.Run())
}
