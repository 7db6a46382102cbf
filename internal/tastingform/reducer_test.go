package tastingform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

func apply(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func filledBasics() State {
	return apply(Initial(),
		SetField{Field: "name", Value: " Rioja Reserva "},
		SetField{Field: "color", Value: "red"},
		SetField{Field: "vintage", Value: "2016"},
	)
}

func completeForm() State {
	return apply(filledBasics(),
		SetField{Field: "clarity", Value: "clear"},
		SetField{Field: "intensity", Value: "deep"},
		ToggleAroma{Aroma: "cherry"},
		ToggleAroma{Aroma: "vanilla"},
		SetField{Field: "sweetness", Value: "1"},
		SetField{Field: "acidity", Value: "3"},
		SetField{Field: "tannin", Value: "4"},
		SetField{Field: "body", Value: "4"},
		SetField{Field: "finish", Value: "5"},
		SetField{Field: "rating", Value: "91"},
	)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := filledBasics()
	s.Form.Aromas = []string{"cherry"}
	s.Errors = map[string]string{"clarity": "x"}

	_ = Reduce(s, ToggleAroma{Aroma: "plum"})
	_ = Reduce(s, SetField{Field: "clarity", Value: "clear"})

	assert.Equal(t, []string{"cherry"}, s.Form.Aromas)
	assert.Equal(t, map[string]string{"clarity": "x"}, s.Errors)
}

func TestReduce_SetField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		check   func(t *testing.T, s State)
		wantErr string
	}{
		{"trims text", "name", "  Barolo ", func(t *testing.T, s State) {
			assert.Equal(t, "Barolo", s.Form.Name)
		}, ""},
		{"parses numbers", "vintage", "2019", func(t *testing.T, s State) {
			assert.Equal(t, 2019, s.Form.Vintage)
		}, ""},
		{"blank number clears", "vintage", "", func(t *testing.T, s State) {
			assert.Zero(t, s.Form.Vintage)
		}, ""},
		{"rejects non numbers", "tannin", "lots", nil, "tannin"},
		{"rejects unknown field", "colour", "red", nil, "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(Initial(), SetField{Field: tt.field, Value: tt.value})
			if tt.wantErr != "" {
				assert.Contains(t, s.Errors, tt.wantErr)
				return
			}
			assert.Empty(t, s.Errors)
			tt.check(t, s)
		})
	}
}

func TestReduce_NextValidatesCurrentStep(t *testing.T) {
	s := Reduce(Initial(), Next{})
	assert.Equal(t, StepBasics, s.Step)
	assert.Contains(t, s.Errors, "name")
	assert.Contains(t, s.Errors, "color")
	assert.NotContains(t, s.Errors, "clarity")

	s = Reduce(filledBasics(), Next{})
	assert.Equal(t, StepAppearance, s.Step)
	assert.Equal(t, StepAppearance, s.MaxStep)
	assert.Nil(t, s.Errors)
}

func TestReduce_Navigation(t *testing.T) {
	s := apply(completeForm(), Next{}, Next{}, Next{})
	require.Equal(t, StepPalate, s.Step)

	s = Reduce(s, Prev{})
	assert.Equal(t, StepNose, s.Step)
	assert.Equal(t, StepPalate, s.MaxStep)

	s = Reduce(s, GoTo{Step: StepReview})
	assert.Equal(t, StepNose, s.Step, "cannot jump past the furthest step reached")

	s = Reduce(s, GoTo{Step: StepBasics})
	assert.Equal(t, StepBasics, s.Step)

	s = Reduce(s, Prev{})
	assert.Equal(t, StepBasics, s.Step)
}

func TestReduce_ToggleAroma(t *testing.T) {
	s := apply(Initial(), ToggleAroma{Aroma: "cherry"}, ToggleAroma{Aroma: "smoke"}, ToggleAroma{Aroma: "cherry"})
	assert.Equal(t, []string{"smoke"}, s.Form.Aromas)

	s = Reduce(s, ToggleAroma{Aroma: "bubblegum"})
	assert.Equal(t, []string{"smoke"}, s.Form.Aromas)
}

func TestReduce_Submit(t *testing.T) {
	t.Run("incomplete form returns to first invalid step", func(t *testing.T) {
		s := apply(filledBasics(), Next{}, Submit{})
		assert.False(t, s.Submitted)
		assert.Equal(t, StepAppearance, s.Step)
		assert.Contains(t, s.Errors, "aromas")
	})

	t.Run("complete form is submitted", func(t *testing.T) {
		s := Reduce(completeForm(), Submit{})
		assert.True(t, s.Submitted)
		assert.Equal(t, LastStep, s.Step)
		assert.Nil(t, s.Errors)

		s = Reduce(s, SetField{Field: "notes", Value: "long finish"})
		assert.False(t, s.Submitted)
	})
}

func TestReduce_Reset(t *testing.T) {
	s := Reduce(completeForm(), Reset{})
	assert.Equal(t, Initial(), s)
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		raw     string
		want    Action
		wantErr bool
	}{
		{`{"type":"next"}`, Next{}, false},
		{`{"type":"goto","step":2}`, GoTo{Step: StepNose}, false},
		{`{"type":"set_field","field":"name","value":"Rioja"}`, SetField{Field: "name", Value: "Rioja"}, false},
		{`{"type":"toggle_aroma","aroma":"rose"}`, ToggleAroma{Aroma: "rose"}, false},
		{`{"type":"reset"}`, Reset{}, false},
		{`{"type":"goto"}`, nil, true},
		{`{"type":"set_field","field":"price"}`, nil, true},
		{`{"type":"explode"}`, nil, true},
		{`not json`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := DecodeAction([]byte(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
