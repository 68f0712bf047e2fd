package handlers

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/todo-api/internal/constants"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
)

var registerOnce sync.Once

// RegisterValidation makes validation errors report JSON field names and
// adds the passwordbytes rule.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// bcrypt rejects passwords over 72 bytes; max would count runes.
		_ = v.RegisterValidation("passwordbytes", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= constants.MaxPasswordBytes
		})
	})
}

// FieldError describes one failed validation rule
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// bindJSON decodes the request body into obj. Bodies that are not valid JSON
// get a 400, bodies that decode but break a rule get a 422.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		apierrors.UnprocessableEntity(c, "", details)
		return false
	}

	apierrors.BadRequest(c, "Invalid request body")
	return false
}
