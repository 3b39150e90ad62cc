package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Nama field di pesan error mengikuti json tag, bukan nama struct
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct memvalidasi request struct dan mengembalikan map field -> pesan.
// Nil artinya lolos validasi.
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string)
	for _, e := range errs {
		if _, exists := fields[e.Field()]; exists {
			continue // satu pesan per field sudah cukup
		}
		fields[e.Field()] = message(e)
	}
	return fields
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("Field %s wajib diisi", e.Field())
	case "gte", "min":
		return fmt.Sprintf("Field %s tidak boleh kurang dari %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("Field %s harus salah satu dari: %s", e.Field(), e.Param())
	case "datetime":
		return fmt.Sprintf("Field %s harus berformat tanggal %s", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("Field %s harus berupa email yang valid", e.Field())
	default:
		return fmt.Sprintf("Field %s tidak valid", e.Field())
	}
}
