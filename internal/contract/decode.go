package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/theirongolddev/tripbook/internal/model"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedResponse means the interpretation output did not match the
// expected structure. Callers treat it as retryable.
var ErrMalformedResponse = errors.New("malformed response")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("weather", func(fl validator.FieldLevel) bool {
		return model.Weather(fl.Field().String()).Valid()
	})

	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses and validates an interpretation payload. On success it
// returns a new BookletData in which every day has at least one highlight.
// On failure the error wraps ErrMalformedResponse and nothing is returned.
func Decode(payload []byte) (*model.BookletData, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedResponse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedResponse)
	}

	if err := compiledSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var data model.BookletData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if err := Validate(&data); err != nil {
		return nil, err
	}

	fillHighlights(&data)
	return &data, nil
}

// Validate checks value-level rules that the schema cannot express, such as
// category uniqueness.
func Validate(data *model.BookletData) error {
	if data == nil {
		return fmt.Errorf("%w: no data", ErrMalformedResponse)
	}
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(msgs, "; "))
}

func fillHighlights(data *model.BookletData) {
	for i := range data.Days {
		if len(data.Days[i].Highlights) == 0 {
			data.Days[i].Highlights = []string{model.FallbackHighlight}
		}
	}
}
