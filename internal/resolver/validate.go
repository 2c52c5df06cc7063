package resolver

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
)

var javaPackagePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("javapkg", func(fl validator.FieldLevel) bool {
		return javaPackagePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// validateStruct runs the struct tag rules and reports each violation under
// prefix.field, skipping fields whose evaluation already failed.
func (r *resolver) validateStruct(s any, prefix string, rng hcl.Range) {
	err := validate.Struct(s)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		r.fail(&descriptor.ConfigurationError{Subject: prefix, Message: err.Error(), Range: &rng})
		return
	}
	for _, fe := range verrs {
		subject := prefix + "." + fe.Field()
		if r.failed[subject] {
			continue
		}
		rr := rng
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: validationMessage(fe), Range: &rr})
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "javapkg":
		return fmt.Sprintf("%q is not a valid Java package name (expected something like com.example.app)", fe.Value())
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s, got %v", lowerFirst(fe.Param()), fe.Value())
	}
	return fmt.Sprintf("failed the %q rule", fe.Tag())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
