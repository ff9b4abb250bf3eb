package ourairports

import (
	"math"
	"strconv"
	"strings"
)

// DecodeBool converts yes/no and 1/0 cells, ignoring case. Any other value
// yields a *FieldError wrapping ErrInvalidBool.
func DecodeBool(s string) (bool, error) {
	v, err := parseBool(s)
	if err != nil {
		return false, &FieldError{Value: s, Err: err}
	}
	return v, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "1":
		return true, nil
	case "no", "0":
		return false, nil
	}
	return false, ErrInvalidBool
}

// DecodeKeywords splits a comma-separated cell. Pieces are trimmed but
// otherwise kept as-is, including empty and repeated entries.
func DecodeKeywords(s string) []string {
	if len(s) == 0 {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// fieldDecoder converts the raw cells of one row. The first failure is kept
// and every later call becomes a no-op returning a zero value, so a record
// can be built in a single composite literal and checked once.
type fieldDecoder struct {
	err error
}

func (d *fieldDecoder) fail(field, raw string, err error) {
	if d.err == nil {
		d.err = &FieldError{Field: field, Value: raw, Err: err}
	}
}

func (d *fieldDecoder) id(field, raw string) ID {
	if d.err != nil {
		return 0
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		d.fail(field, raw, err)
		return 0
	}
	return ID(v)
}

func (d *fieldDecoder) float(field, raw string) float64 {
	if d.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		d.fail(field, raw, err)
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		d.fail(field, raw, ErrNotFinite)
		return 0
	}
	return v
}

func (d *fieldDecoder) optFloat(field, raw string) *float64 {
	if d.err != nil || strings.TrimSpace(raw) == "" {
		return nil
	}
	v := d.float(field, raw)
	if d.err != nil {
		return nil
	}
	return &v
}

func (d *fieldDecoder) optInt32(field, raw string) *int32 {
	if d.err != nil || strings.TrimSpace(raw) == "" {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		d.fail(field, raw, err)
		return nil
	}
	n := int32(v)
	return &n
}

func (d *fieldDecoder) boolean(field, raw string) bool {
	if d.err != nil {
		return false
	}
	v, err := parseBool(raw)
	if err != nil {
		d.fail(field, raw, err)
	}
	return v
}

// decodeCode runs a vocabulary parser through d.
func decodeCode[T any](d *fieldDecoder, field, raw string, parse func(string) (T, error)) T {
	var zero T
	if d.err != nil {
		return zero
	}
	v, err := parse(raw)
	if err != nil {
		d.fail(field, raw, err)
		return zero
	}
	return v
}

// decodeOptCode is decodeCode for nullable columns: an empty cell yields the
// zero value, which every vocabulary reserves for "absent".
func decodeOptCode[T any](d *fieldDecoder, field, raw string, parse func(string) (T, error)) T {
	var zero T
	if raw == "" {
		return zero
	}
	return decodeCode(d, field, raw, parse)
}
