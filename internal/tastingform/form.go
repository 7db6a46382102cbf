// Package tastingform holds the state machine behind the multi-step wine
// tasting form. All transitions go through Reduce, which never mutates its
// input.
package tastingform

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Step is a page of the form
type Step int

const (
	StepBasics Step = iota
	StepAppearance
	StepNose
	StepPalate
	StepConclusion
	StepReview
)

// LastStep is the final page
const LastStep = StepReview

var stepNames = []string{"basics", "appearance", "nose", "palate", "conclusion", "review"}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// Form is the data collected by the form. JSON names double as field names in actions.
type Form struct {
	Name     string `json:"name" validate:"required,max=120" step:"0"`
	Producer string `json:"producer" validate:"max=120" step:"0"`
	Vintage  int    `json:"vintage" validate:"omitempty,min=1900,max=2100" step:"0"`
	Color    string `json:"color" validate:"required,oneof=red white rose sparkling orange" step:"0"`

	Clarity   string `json:"clarity" validate:"required,oneof=clear hazy cloudy" step:"1"`
	Intensity string `json:"intensity" validate:"required,oneof=pale medium deep" step:"1"`

	Aromas []string `json:"aromas" validate:"min=1,max=8,dive,aroma" step:"2"`

	Sweetness int `json:"sweetness" validate:"min=1,max=5" step:"3"`
	Acidity   int `json:"acidity" validate:"min=1,max=5" step:"3"`
	Tannin    int `json:"tannin" validate:"min=1,max=5" step:"3"`
	Body      int `json:"body" validate:"min=1,max=5" step:"3"`
	Finish    int `json:"finish" validate:"min=1,max=5" step:"3"`

	Rating int    `json:"rating" validate:"min=0,max=100" step:"4"`
	Notes  string `json:"notes" validate:"max=2000" step:"4"`
}

// State is the complete form state owned by one session
type State struct {
	Step      Step              `json:"step"`
	MaxStep   Step              `json:"max_step"`
	Form      Form              `json:"form"`
	Errors    map[string]string `json:"errors,omitempty"`
	Submitted bool              `json:"submitted"`
}

// Initial returns an empty form on the first step
func Initial() State {
	return State{Form: Form{Aromas: []string{}}}
}

// Aromas lists selectable aromas by family
var Aromas = map[string][]string{
	"fruit":  {"cherry", "blackberry", "plum", "citrus", "apple", "peach", "tropical"},
	"floral": {"rose", "violet", "blossom"},
	"spice":  {"pepper", "clove", "licorice", "cinnamon"},
	"earth":  {"mushroom", "forest_floor", "mineral", "leather"},
	"oak":    {"vanilla", "toast", "smoke", "cedar"},
}

var knownAromas = func() map[string]bool {
	m := make(map[string]bool)
	for _, list := range Aromas {
		for _, a := range list {
			m[a] = true
		}
	}
	return m
}()

// IsAroma reports whether a is in the aroma catalog
func IsAroma(a string) bool {
	return knownAromas[a]
}

var (
	validate    = newValidator()
	fieldSteps  = map[string]Step{}
	fieldByJSON = map[string]int{}
)

func init() {
	t := reflect.TypeOf(Form{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		fieldByJSON[name] = i
		fieldSteps[name] = Step(f.Tag.Get("step")[0] - '0')
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("aroma", func(fl validator.FieldLevel) bool {
		return IsAroma(fl.Field().String())
	})
	return v
}

func jsonName(f reflect.StructField) string {
	return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
}

// StepOf returns the step a field belongs to
func StepOf(field string) (Step, bool) {
	s, ok := fieldSteps[field]
	return s, ok
}

// validateSteps returns errors for fields on the given steps, keyed by field name
func validateSteps(f Form, steps ...Step) map[string]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}

	wanted := make(map[Step]bool, len(steps))
	for _, s := range steps {
		wanted[s] = true
	}

	out := make(map[string]string)
	for _, fe := range verrs {
		field := strings.SplitN(fe.Field(), "[", 2)[0]
		if !wanted[fieldSteps[field]] {
			continue
		}
		if _, seen := out[field]; !seen {
			out[field] = message(fe)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "Select at least " + fe.Param()
		}
		return "Must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.Slice {
			return "Select at most " + fe.Param()
		}
		return "Must be at most " + fe.Param()
	case "aroma":
		return "Unknown aroma"
	default:
		return "Invalid value"
	}
}
