package validatorx

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/compose-demos/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	nv := gpvalidator.New()
	// report fields by their json name
	nv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = nv.RegisterValidation("notblank", notBlank)
	_ = nv.RegisterValidation("taskcategory", taskCategory)
	v = nv
}

func get() *gpvalidator.Validate {
	if v == nil {
		Init()
	}
	return v
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	return get().Struct(s)
}

// ValidateVar validates a single value against a tag
func ValidateVar(field interface{}, tag string) error {
	return get().Var(field, tag)
}

// ValidateVarWithValue validates field against other, e.g. with "eqfield"
func ValidateVarWithValue(field, other interface{}, tag string) error {
	return get().VarWithValue(field, other, tag)
}

// FieldTags flattens validation errors into field -> failed tag.
func FieldTags(err error) map[string]string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}

func notBlank(fl gpvalidator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

func taskCategory(fl gpvalidator.FieldLevel) bool {
	return slices.Contains(constant.TaskCategories, fl.Field().String())
}
