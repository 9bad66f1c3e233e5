package rowcodec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is a positional tuple of scalar values as returned by the query
// service. Trailing optional columns may be absent entirely.
type Row []interface{}

// Kind describes how a positional value is coerced.
type Kind int

const (
	KindString Kind = iota
	KindFloat
	KindInt
	// KindCount is an integer that defaults to 0 instead of null when the
	// source value is absent or NULL.
	KindCount
	KindTime
	KindBool
)

// Field declares one positional column of a result row.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
}

// Opt marks the field as optional: it may be NULL or missing from the
// tail of the row without failing the decode.
func (f Field) Opt() Field {
	f.Optional = true
	return f
}

func String(name string) Field { return Field{Name: name, Kind: KindString} }
func Float(name string) Field  { return Field{Name: name, Kind: KindFloat} }
func Int(name string) Field    { return Field{Name: name, Kind: KindInt} }
func Count(name string) Field  { return Field{Name: name, Kind: KindCount} }
func Time(name string) Field   { return Field{Name: name, Kind: KindTime} }
func Bool(name string) Field   { return Field{Name: name, Kind: KindBool} }

// Schema is an ordered field list with a precomputed minimum row length.
type Schema struct {
	fields []Field
	minLen int
}

// NewSchema builds a schema. The minimum required length is the position
// after the last non-optional field; everything beyond it may be missing.
func NewSchema(fields ...Field) Schema {
	minLen := 0
	for i, f := range fields {
		if !f.Optional {
			minLen = i + 1
		}
	}
	return Schema{fields: fields, minLen: minLen}
}

// MinLen reports the minimum number of leading values a row must carry.
func (s Schema) MinLen() int { return s.minLen }

// MalformedRowError reports a row shorter than the schema requires.
type MalformedRowError struct {
	Field string
	Have  int
	Want  int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row: %d of %d required values, first missing field %q", e.Have, e.Want, e.Field)
}

// Record is a decoded row. Every declared field is present; values are
// typed pointers (nil meaning no data) except counts, which are int64.
type Record map[string]interface{}

// Decode applies the schema to a positional row. Rows shorter than the
// schema minimum fail with *MalformedRowError; missing optional trailing
// values default per field kind.
func Decode(s Schema, row Row) (Record, error) {
	if len(row) < s.minLen {
		return nil, &MalformedRowError{Field: s.fields[len(row)].Name, Have: len(row), Want: s.minLen}
	}
	rec := make(Record, len(s.fields))
	for i, f := range s.fields {
		var raw interface{}
		if i < len(row) {
			raw = row[i]
		}
		value, err := coerce(f, raw)
		if err != nil {
			return nil, fmt.Errorf("decode field %q (position %d): %w", f.Name, i, err)
		}
		rec[f.Name] = value
	}
	return rec, nil
}

func coerce(f Field, raw interface{}) (interface{}, error) {
	switch f.Kind {
	case KindString:
		return toString(raw)
	case KindFloat:
		return toFloat(raw)
	case KindInt:
		return toInt(raw)
	case KindCount:
		v, err := toInt(raw)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return int64(0), nil
		}
		return *v, nil
	case KindTime:
		return toTime(raw)
	case KindBool:
		return toBool(raw)
	}
	return nil, fmt.Errorf("unknown kind %d", f.Kind)
}

// Float returns the decoded float value or nil.
func (r Record) Float(name string) *float64 {
	if v, ok := r[name].(*float64); ok {
		return v
	}
	return nil
}

// Int returns the decoded integer value or nil.
func (r Record) Int(name string) *int64 {
	if v, ok := r[name].(*int64); ok {
		return v
	}
	return nil
}

// Count returns the decoded count, 0 when the source value was absent.
func (r Record) Count(name string) int64 {
	if v, ok := r[name].(int64); ok {
		return v
	}
	return 0
}

// Str returns the decoded string value or nil.
func (r Record) Str(name string) *string {
	if v, ok := r[name].(*string); ok {
		return v
	}
	return nil
}

// Bool returns the decoded boolean value or nil.
func (r Record) Bool(name string) *bool {
	if v, ok := r[name].(*bool); ok {
		return v
	}
	return nil
}

// Time returns the decoded timestamp or nil.
func (r Record) Time(name string) *time.Time {
	if v, ok := r[name].(*time.Time); ok {
		return v
	}
	return nil
}

// TimeString renders the decoded timestamp in the canonical wire form.
func (r Record) TimeString(name string) *string {
	t := r.Time(name)
	if t == nil {
		return nil
	}
	s := t.Format(TimeLayout)
	return &s
}

// TimeLayout is the canonical string form for date/time fields.
const TimeLayout = "2006-01-02 15:04:05"

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	TimeLayout,
	"2006-01-02",
}

func toString(raw interface{}) (*string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case []byte:
		s := string(v)
		return &s, nil
	case time.Time:
		s := v.Format(TimeLayout)
		return &s, nil
	default:
		s := fmt.Sprint(v)
		return &s, nil
	}
}

func toFloat(raw interface{}) (*float64, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case float32:
		f := float64(v)
		return &f, nil
	case int64:
		f := float64(v)
		return &f, nil
	case int:
		f := float64(v)
		return &f, nil
	case []byte:
		return parseFloat(string(v))
	case string:
		return parseFloat(v)
	default:
		return nil, fmt.Errorf("cannot coerce %T to float", raw)
	}
}

func parseFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse float %q: %w", s, err)
	}
	return &f, nil
}

func toInt(raw interface{}) (*int64, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int64:
		return &v, nil
	case int:
		i := int64(v)
		return &i, nil
	case float64:
		i := int64(v)
		return &i, nil
	case []byte:
		return parseInt(string(v))
	case string:
		return parseInt(v)
	default:
		return nil, fmt.Errorf("cannot coerce %T to int", raw)
	}
}

func parseInt(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse int %q: %w", s, err)
	}
	return &i, nil
}

func toTime(raw interface{}) (*time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case []byte:
		return parseTime(string(v))
	case string:
		return parseTime(v)
	default:
		return nil, fmt.Errorf("cannot coerce %T to time", raw)
	}
}

func parseTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("parse time %q", s)
}

func toBool(raw interface{}) (*bool, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case bool:
		return &v, nil
	case int64:
		b := v != 0
		return &b, nil
	case int:
		b := v != 0
		return &b, nil
	case float64:
		b := v != 0
		return &b, nil
	case []byte:
		return parseBool(string(v))
	case string:
		return parseBool(v)
	default:
		return nil, fmt.Errorf("cannot coerce %T to bool", raw)
	}
}

func parseBool(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "t", "true", "1", "y", "yes":
		b := true
		return &b, nil
	case "f", "false", "0", "n", "no":
		b := false
		return &b, nil
	}
	return nil, fmt.Errorf("parse bool %q", s)
}
