package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Katakana (full-width), prolonged sound mark and spaces.
var kanaPattern = regexp.MustCompile(`^[ァ-ヶー\x{3000}\s]+$`)

// RegisterValidators installs the custom binding validators. Called once
// at startup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("kana", func(fl validator.FieldLevel) bool {
			return kanaPattern.MatchString(fl.Field().String())
		})
	}
}
