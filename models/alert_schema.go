package models

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/alert.json
var alertSchema []byte

var alertSchemaLoader = gojsonschema.NewBytesLoader(alertSchema)

type ValidationError struct {
	Context     string `json:"context"`
	Description string `json:"description"`
}

type ValidationErrors []ValidationError

var _ error = ValidationErrors{}

func (v ValidationErrors) Error() string {
	var errs []string
	for _, failure := range v {
		errs = append(errs, fmt.Sprintf("%s-%s", failure.Context, failure.Description))
	}
	return strings.Join(errs, ", ")
}

func (v ValidationErrors) Unwrap() error {
	return ErrInvalidJson
}

// ValidateAlertJSON checks an alert payload against the alert schema and then
// decodes it, so callers get field level errors before cross reference errors.
func ValidateAlertJSON(rawJson []byte) (*Alert, error) {
	result, err := gojsonschema.Validate(alertSchemaLoader, gojsonschema.NewBytesLoader(rawJson))
	if err != nil {
		return nil, ValidationErrors{{Context: "(root)", Description: err.Error()}}
	}
	if !result.Valid() {
		errs := make(ValidationErrors, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			errs = append(errs, ValidationError{Context: e.Context().String(), Description: e.Description()})
		}
		return nil, errs
	}

	alert := &Alert{}
	if err := alert.UnmarshalJSON(rawJson); err != nil {
		return nil, err
	}
	return alert, nil
}
