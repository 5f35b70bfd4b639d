package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation("role", roleValidation)
	registerCustomTranslation("role", "must be a recognized role")
	_ = Validate.RegisterValidation("kpitype", kpiTypeValidation)
	registerCustomTranslation("kpitype", "must be a recognized KPI data type")
}

func registerCustomTranslation(tag, text string) {
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// roleValidation only allows the roles the platform knows about.
func roleValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, role := range entities.AllRoles {
		if value == role {
			return true
		}
	}
	return false
}

// kpiTypeValidation only allows catalog data types.
func kpiTypeValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, t := range entities.AllKPITypes {
		if value == t {
			return true
		}
	}
	return false
}

// CheckStruct runs struct validation and converts failures into an *Error
// carrying translated per-field messages.
func CheckStruct(s interface{}) error {
	if err := Validate.Struct(s); err != nil {
		var fields []FieldError
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range vErrs {
				fields = append(fields, FieldError{Field: fe.Field(), Error: fe.Translate(Translator)})
			}
		}
		return NewError(err, fields...)
	}
	return nil
}
