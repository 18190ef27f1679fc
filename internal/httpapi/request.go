package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

// looseValue accepts a JSON string, number, boolean or null. The dashboard
// sends ids and amounts either as numbers or as form strings.
type looseValue struct {
	Set      bool
	Null     bool
	IsNumber bool
	Text     string
}

func (v *looseValue) UnmarshalJSON(data []byte) error {
	v.Set = true
	trimmed := bytes.TrimSpace(data)

	switch {
	case bytes.Equal(trimmed, []byte("null")):
		v.Null = true
		return nil
	case bytes.Equal(trimmed, []byte("true")):
		v.Text = "true"
		return nil
	case bytes.Equal(trimmed, []byte("false")):
		return nil
	case len(trimmed) > 0 && trimmed[0] == '"':
		return json.Unmarshal(trimmed, &v.Text)
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return errors.New("expected a string, number, boolean or null")
	}
	v.IsNumber = true
	v.Text = number.String()
	return nil
}

// String returns the value as text, or "" when the value is absent, null,
// false or a numeric zero.
func (v looseValue) String() string {
	if v.Null {
		return ""
	}
	if v.IsNumber {
		if parsed, err := strconv.ParseFloat(v.Text, 64); err == nil && parsed == 0 {
			return ""
		}
	}
	return v.Text
}

// Ptr returns nil for absent or null values.
func (v looseValue) Ptr() *string {
	if !v.Set || v.Null {
		return nil
	}
	text := v.Text
	return &text
}

func (v looseValue) Decimal(field string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(v.String())
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.New(field + " must be a number")
	}
	return amount, nil
}

func (v looseValue) Uint(field string) (uint, error) {
	raw := strings.TrimSpace(v.String())
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.New(field + " must be a positive integer")
	}
	return uint(parsed), nil
}

func (v looseValue) Int64Ptr(field string) (*int64, error) {
	raw := v.Ptr()
	if raw == nil {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(*raw), 10, 64)
	if err != nil {
		return nil, errors.New(field + " must be an integer")
	}
	return &parsed, nil
}

func parseUintID(raw string) (uint, error) {
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id64 == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id64), nil
}

// parseOptionalIntQuery mirrors a lenient integer query parameter: a missing or
// malformed value is treated as absent.
func parseOptionalIntQuery(r *http.Request, name string) (int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
