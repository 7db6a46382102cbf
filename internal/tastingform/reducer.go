package tastingform

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// Action is one transition of the form. The set of actions is closed.
type Action interface {
	isAction()
}

// Next moves forward if the current step validates
type Next struct{}

// Prev moves back one step
type Prev struct{}

// GoTo jumps to a step already reached
type GoTo struct{ Step Step }

// SetField updates one field by its JSON name
type SetField struct {
	Field string
	Value string
}

// ToggleAroma adds or removes an aroma
type ToggleAroma struct{ Aroma string }

// Validate checks the current step without moving
type Validate struct{}

// Submit validates every step and marks the form submitted
type Submit struct{}

// Reset discards everything
type Reset struct{}

func (Next) isAction()        {}
func (Prev) isAction()        {}
func (GoTo) isAction()        {}
func (SetField) isAction()    {}
func (ToggleAroma) isAction() {}
func (Validate) isAction()    {}
func (Submit) isAction()      {}
func (Reset) isAction()       {}

// Reduce applies a to s and returns the new state. s is left untouched.
func Reduce(s State, a Action) State {
	next := s.clone()

	switch a := a.(type) {
	case Next:
		if errs := validateSteps(next.Form, next.Step); errs != nil {
			next.Errors = errs
			return next
		}
		next.Errors = nil
		if next.Step < LastStep {
			next.Step++
		}
		if next.Step > next.MaxStep {
			next.MaxStep = next.Step
		}

	case Prev:
		if next.Step > StepBasics {
			next.Step--
		}
		next.Errors = nil

	case GoTo:
		if a.Step >= StepBasics && a.Step <= next.MaxStep {
			next.Step = a.Step
			next.Errors = nil
		}

	case SetField:
		next.Submitted = false
		if err := next.Form.set(a.Field, a.Value); err != "" {
			next.setError(a.Field, err)
			return next
		}
		next.clearError(a.Field)

	case ToggleAroma:
		if !IsAroma(a.Aroma) {
			return next
		}
		next.Submitted = false
		next.Form.Aromas = toggle(next.Form.Aromas, a.Aroma)
		next.clearError("aromas")

	case Validate:
		next.Errors = validateSteps(next.Form, next.Step)

	case Submit:
		all := make([]Step, 0, LastStep+1)
		for st := StepBasics; st <= LastStep; st++ {
			all = append(all, st)
		}
		if errs := validateSteps(next.Form, all...); errs != nil {
			next.Errors = errs
			next.Step = earliestStep(errs)
			return next
		}
		next.Errors = nil
		next.Step = LastStep
		next.MaxStep = LastStep
		next.Submitted = true

	case Reset:
		return Initial()
	}

	return next
}

func (s State) clone() State {
	out := s
	out.Form.Aromas = append([]string{}, s.Form.Aromas...)
	if s.Errors != nil {
		out.Errors = make(map[string]string, len(s.Errors))
		for k, v := range s.Errors {
			out.Errors[k] = v
		}
	}
	return out
}

func (s *State) setError(field, msg string) {
	if s.Errors == nil {
		s.Errors = make(map[string]string)
	}
	s.Errors[field] = msg
}

func (s *State) clearError(field string) {
	delete(s.Errors, field)
	if len(s.Errors) == 0 {
		s.Errors = nil
	}
}

func earliestStep(errs map[string]string) Step {
	first := LastStep
	for field := range errs {
		if st, ok := fieldSteps[field]; ok && st < first {
			first = st
		}
	}
	return first
}

func toggle(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, item)
}

// set writes a raw value into the named field and returns a message on failure
func (f *Form) set(field, value string) string {
	idx, ok := fieldByJSON[field]
	if !ok || field == "aromas" {
		return "Unknown field"
	}

	v := reflect.ValueOf(f).Elem().Field(idx)
	switch v.Kind() {
	case reflect.String:
		v.SetString(strings.TrimSpace(value))
	case reflect.Int:
		value = strings.TrimSpace(value)
		if value == "" {
			v.SetInt(0)
			return ""
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return "Must be a whole number"
		}
		v.SetInt(int64(n))
	}
	return ""
}

// wireAction is the JSON shape of an action
type wireAction struct {
	Type  string `json:"type"`
	Step  *int   `json:"step,omitempty"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
	Aroma string `json:"aroma,omitempty"`
}

// DecodeAction parses an action such as {"type":"set_field","field":"name","value":"Rioja"}
func DecodeAction(raw []byte) (Action, error) {
	var w wireAction
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: malformed action: %v", domain.ErrInvalidInput, err)
	}

	switch w.Type {
	case "next":
		return Next{}, nil
	case "prev":
		return Prev{}, nil
	case "goto":
		if w.Step == nil {
			return nil, fmt.Errorf("%w: goto needs a step", domain.ErrInvalidInput)
		}
		return GoTo{Step: Step(*w.Step)}, nil
	case "set_field":
		if _, ok := fieldByJSON[w.Field]; !ok {
			return nil, fmt.Errorf("%w: unknown field %q", domain.ErrInvalidInput, w.Field)
		}
		return SetField{Field: w.Field, Value: w.Value}, nil
	case "toggle_aroma":
		return ToggleAroma{Aroma: w.Aroma}, nil
	case "validate":
		return Validate{}, nil
	case "submit":
		return Submit{}, nil
	case "reset":
		return Reset{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, w.Type)
	}
}
