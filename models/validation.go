package models

import (
	e "github.com/datastax/csv-projector/errors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"reflect"
	"strings"
)

var (
	inputValidator *validator.Validate
	trans          ut.Translator
)

func init() {
	inputValidator = validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(inputValidator, trans)

	inputValidator.RegisterTagNameFunc(tagName)
}

// Validate checks a struct against its validate tags and returns a RequestError with a readable message
// when it does not pass.
func Validate(s interface{}) error {
	if err := inputValidator.Struct(s); err != nil {
		return e.TranslateValidatorError(err, trans)
	}
	return nil
}

func tagName(field reflect.StructField) string {
	for _, key := range []string{"mapstructure", "json"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
