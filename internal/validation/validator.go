// Package validation wraps go-playground/validator with the catalog's custom rules
// and turns its errors into a field -> message map.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Errors maps the JSON name of every violated field to a readable message.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator validates request and patch shapes.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the catalog rules registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Prices are decimals; validate them as numbers so gte/lte work.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("primeiramaiuscula", primeiraLetraMaiuscula)

	return &Validator{validate: v}
}

// Struct validates s and returns Errors listing every violated field, or nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	parent := reflect.Indirect(reflect.ValueOf(s))
	out := make(Errors, len(validationErrors))
	for _, e := range validationErrors {
		if _, seen := out[e.Field()]; seen {
			continue
		}
		out[e.Field()] = strings.Join(v.fieldMessages(parent, e), " ")
	}
	return out
}

// fieldMessages lists the message of every rule the field breaks. The
// validator stops at the first failing rule, so the rules after it are
// checked one by one.
func (v *Validator) fieldMessages(parent reflect.Value, first validator.FieldError) []string {
	messages := []string{message(first.Field(), first)}
	if first.Tag() == "required" || parent.Kind() != reflect.Struct {
		return messages
	}
	sf, ok := parent.Type().FieldByName(first.StructField())
	if !ok {
		return messages
	}

	value := parent.FieldByIndex(sf.Index).Interface()
	rules := strings.Split(sf.Tag.Get("validate"), ",")
	for i, rule := range rules {
		if strings.SplitN(rule, "=", 2)[0] != first.Tag() {
			continue
		}
		for _, next := range rules[i+1:] {
			var errs validator.ValidationErrors
			if err := v.validate.Var(value, next); errors.As(err, &errs) {
				messages = append(messages, message(first.Field(), errs[0]))
			}
		}
		break
	}
	return messages
}

func primeiraLetraMaiuscula(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func message(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório!", field)
	case "min":
		return fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres!", field, e.Param())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres!", field, e.Param())
	case "gte":
		return fmt.Sprintf("O campo %s deve ser maior ou igual a %s!", field, e.Param())
	case "lte":
		return fmt.Sprintf("O campo %s deve ser menor ou igual a %s!", field, e.Param())
	case "gt":
		return fmt.Sprintf("O campo %s deve ser maior que %s!", field, e.Param())
	case "primeiramaiuscula":
		return "A primeira letra do nome do produto deve ser maiúscula"
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' tag", field, e.Tag())
	}
}
