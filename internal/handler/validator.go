package handler

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

var requestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("harvest_mode", isHarvestMode); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("upgrade_kind", isUpgradeKind); err != nil {
		panic(err)
	}
	return v
})

// ValidateRequest checks a decoded request body against its validate tags
func ValidateRequest(req interface{}) error {
	return requestValidator().Struct(req)
}

// jsonName reports fields by the name clients send
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

var fieldMessages = map[string]func(validator.FieldError) string{
	"required":     func(validator.FieldError) string { return "This field is required" },
	"harvest_mode": func(validator.FieldError) string { return "Must be one of: raw, wine, special" },
	"upgrade_kind": func(validator.FieldError) string { return "Unknown upgrade" },
	"uuid":         func(validator.FieldError) string { return "Must be a UUID" },
	"oneof": func(e validator.FieldError) string {
		return "Must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
	},
	"max": func(e validator.FieldError) string { return fmt.Sprintf("Must be at most %s", e.Param()) },
	"min": func(e validator.FieldError) string { return fmt.Sprintf("Must be at least %s", e.Param()) },
}

// FormatValidationError maps each failing field to a message safe to show a player
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := "Invalid value"
		if format, ok := fieldMessages[fe.Tag()]; ok {
			msg = format(fe)
		}
		out[fe.Field()] = msg
	}
	return out
}

func isHarvestMode(fl validator.FieldLevel) bool {
	switch domain.HarvestMode(fl.Field().String()) {
	case domain.HarvestSellRaw, domain.HarvestMakeWine, domain.HarvestSpecialWine:
		return true
	}
	return false
}

func isUpgradeKind(fl validator.FieldLevel) bool {
	return slices.Contains(domain.AllUpgradeKinds, domain.UpgradeKind(fl.Field().String()))
}
