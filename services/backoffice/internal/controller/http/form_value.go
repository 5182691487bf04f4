package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"lv33global/services/backoffice/internal/usecase"
)

// formValue is a scalar field that binds from multipart, urlencoded and JSON
// bodies alike. In JSON it accepts strings, numbers, booleans and null.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
	case data[0] == '{' || data[0] == '[':
		return errors.New("expected a scalar value")
	default:
		*v = formValue(data)
	}
	return nil
}

func (v formValue) String() string {
	return strings.TrimSpace(string(v))
}

func (v formValue) empty() bool {
	return v.String() == ""
}

// first returns the first non-empty value.
func first(values ...formValue) formValue {
	for _, v := range values {
		if !v.empty() {
			return v
		}
	}
	return ""
}

// fieldParser collects fields whose value could not be parsed.
type fieldParser struct {
	invalid []string
}

func (p *fieldParser) int(name string, v formValue) int {
	if v.empty() {
		return 0
	}
	n, err := strconv.Atoi(v.String())
	if err != nil {
		f, ferr := strconv.ParseFloat(v.String(), 64)
		if ferr != nil || f != float64(int(f)) {
			p.invalid = append(p.invalid, name)
			return 0
		}
		n = int(f)
	}
	return n
}

func (p *fieldParser) float(name string, v formValue) float64 {
	if v.empty() {
		return 0
	}
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		p.invalid = append(p.invalid, name)
		return 0
	}
	return f
}

func (p *fieldParser) err() error {
	if len(p.invalid) == 0 {
		return nil
	}
	return usecase.InvalidFields(p.invalid...)
}

// missing takes name/value pairs and returns the names of empty values.
func missing(pairs ...any) []string {
	var names []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if v, _ := pairs[i+1].(formValue); v.empty() {
			names = append(names, pairs[i].(string))
		}
	}
	return names
}

// paymentsField binds a list attribute from `payments`, `payments[]`, a JSON
// array or a JSON string.
type paymentsField struct {
	Payments        []string        `form:"payments" json:"-"`
	PaymentsBracket []string        `form:"payments[]" json:"-"`
	PaymentsJSON    json.RawMessage `form:"-" json:"payments"`
	PaymentsArray   json.RawMessage `form:"-" json:"payments[]"`
}

func (p paymentsField) list() []string {
	switch {
	case len(p.PaymentsBracket) > 0:
		return usecase.CoerceList(p.PaymentsBracket)
	case len(p.Payments) > 0:
		return usecase.CoerceList(p.Payments)
	case len(p.PaymentsArray) > 0:
		return usecase.CoerceList(p.PaymentsArray)
	default:
		return usecase.CoerceList(p.PaymentsJSON)
	}
}
