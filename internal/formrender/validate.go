package formrender

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/models"
)

// Validate checks required fields in form order and reports only the first
// one that is missing.
func Validate(fields []models.Field, answers Answers) error {
	for _, f := range fields {
		if err := checkRequired(f, answers[f.ID]); err != nil {
			return err
		}
	}
	return nil
}

func checkRequired(f models.Field, v any) error {
	if !f.Required {
		if !f.Type.Valid() {
			return unsupported(f)
		}
		return nil
	}
	missing := false
	switch f.Type {
	case models.FieldCheckboxMulti:
		missing = len(toStrings(v)) == 0
	case models.FieldCheckboxSingle:
		missing = !truthy(v)
	case models.FieldFile:
		s, isStr := v.(string)
		missing = v == nil || (isStr && strings.TrimSpace(s) == "")
	case models.FieldText, models.FieldEmail, models.FieldNumber, models.FieldSelect:
		missing = strings.TrimSpace(asText(v)) == ""
	default:
		return unsupported(f)
	}
	if missing {
		return apperr.FieldInvalid(f.ID, requiredMessage(f))
	}
	return nil
}

func requiredMessage(f models.Field) string {
	switch f.Type {
	case models.FieldCheckboxMulti:
		return fmt.Sprintf("Please select at least one option for %s", f.Label)
	case models.FieldCheckboxSingle:
		return fmt.Sprintf("%s must be checked", f.Label)
	case models.FieldFile:
		return fmt.Sprintf("Please upload a file for %s", f.Label)
	default:
		return fmt.Sprintf("%s is required", f.Label)
	}
}

func unsupported(f models.Field) error {
	return apperr.FieldInvalid(f.ID, fmt.Sprintf("unsupported field type %q", f.Type))
}

// Coerce converts a decoded JSON value into the stored shape for f, or
// rejects it. Empty values of optional fields pass through as their
// initial value.
func Coerce(f models.Field, v any) (any, error) {
	bad := func(msg string) error { return apperr.FieldInvalid(f.ID, fmt.Sprintf("%s: %s", f.Label, msg)) }

	switch f.Type {
	case models.FieldText:
		if v == nil {
			return "", nil
		}
		s, ok := v.(string)
		if !ok {
			return nil, bad("expected text")
		}
		return s, nil

	case models.FieldEmail:
		if v == nil {
			return "", nil
		}
		s, ok := v.(string)
		if !ok {
			return nil, bad("expected an email address")
		}
		s = strings.TrimSpace(s)
		if err := validation.Validate(s, is.Email); err != nil {
			return nil, bad("invalid email address")
		}
		return s, nil

	case models.FieldNumber:
		switch n := v.(type) {
		case nil:
			return "", nil
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case json.Number:
			f64, err := n.Float64()
			if err != nil {
				return nil, bad("expected a number")
			}
			return f64, nil
		case string:
			s := strings.TrimSpace(n)
			if s == "" {
				return "", nil
			}
			f64, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, bad("expected a number")
			}
			return f64, nil
		default:
			return nil, bad("expected a number")
		}

	case models.FieldSelect:
		if v == nil {
			return "", nil
		}
		s, ok := v.(string)
		if !ok {
			return nil, bad("expected one option")
		}
		if s != "" && !allowed(f, s) {
			return nil, bad(fmt.Sprintf("%q is not an option", s))
		}
		return s, nil

	case models.FieldCheckboxSingle:
		switch b := v.(type) {
		case nil:
			return false, nil
		case bool:
			return b, nil
		case string:
			parsed, err := strconv.ParseBool(b)
			if err != nil {
				return nil, bad("expected true or false")
			}
			return parsed, nil
		default:
			return nil, bad("expected true or false")
		}

	case models.FieldCheckboxMulti:
		if v == nil {
			return []string{}, nil
		}
		if !isList(v) {
			return nil, bad("expected a list of options")
		}
		list := toStrings(v)
		for _, s := range list {
			if !allowed(f, s) {
				return nil, bad(fmt.Sprintf("%q is not an option", s))
			}
		}
		return list, nil

	case models.FieldFile:
		switch s := v.(type) {
		case nil:
			return nil, nil
		case string:
			if strings.TrimSpace(s) == "" {
				return nil, nil
			}
			return s, nil
		default:
			return nil, bad("expected an uploaded file URL")
		}

	default:
		return nil, unsupported(f)
	}
}

// Normalize validates a full answer set against the form and returns it in
// field order, ready to store. Answers for unknown fields are rejected.
func Normalize(form *models.Form, answers Answers) ([]models.Answer, error) {
	for id := range answers {
		if form.FieldByID(id) == nil {
			return nil, apperr.FieldInvalid(id, fmt.Sprintf("unknown field %q", id))
		}
	}

	out := make([]models.Answer, 0, len(form.Fields))
	for _, f := range form.Fields {
		raw, present := answers[f.ID]
		if err := checkRequired(f, raw); err != nil {
			return nil, err
		}
		if !present {
			raw = InitialValue(f)
		}
		v, err := Coerce(f, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Answer{FieldID: f.ID, Value: v})
	}
	return out, nil
}

// allowed reports whether s is one of f's visible options. Fields without
// options accept anything.
func allowed(f models.Field, s string) bool {
	opts := VisibleOptions(f.Options)
	if len(opts) == 0 {
		return true
	}
	for _, o := range opts {
		if o == s {
			return true
		}
	}
	return false
}

func isList(v any) bool {
	switch v.(type) {
	case []string, []any:
		return true
	}
	return false
}

func toStrings(v any) []string {
	switch l := v.(type) {
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, e := range l {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b != "" && b != "false"
	case float64:
		return b != 0
	}
	return false
}

func asText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
