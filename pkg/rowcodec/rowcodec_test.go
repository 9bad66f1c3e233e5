package rowcodec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradeSchema() Schema {
	return NewSchema(
		Int("assessment_id"),
		String("section_id"),
		Float("quiz_grade").Opt(),
		Float("assignment_grade").Opt(),
		Count("student_count").Opt(),
		Time("deadline").Opt(),
		Bool("late_flag").Opt(),
	)
}

func TestDecodeShortRowFails(t *testing.T) {
	_, err := Decode(gradeSchema(), Row{int64(1)})
	require.Error(t, err)

	var malformed *MalformedRowError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "section_id", malformed.Field)
	assert.Equal(t, 1, malformed.Have)
	assert.Equal(t, 2, malformed.Want)
}

func TestDecodeMissingTrailingDefaults(t *testing.T) {
	rec, err := Decode(gradeSchema(), Row{int64(7), "S1"})
	require.NoError(t, err)

	require.NotNil(t, rec.Int("assessment_id"))
	assert.Equal(t, int64(7), *rec.Int("assessment_id"))
	assert.Nil(t, rec.Float("quiz_grade"))
	assert.Nil(t, rec.Float("assignment_grade"))
	assert.Equal(t, int64(0), rec.Count("student_count"))
	assert.Nil(t, rec.Time("deadline"))
	assert.Nil(t, rec.Bool("late_flag"))
}

func TestDecodeNullNumericStaysNull(t *testing.T) {
	rec, err := Decode(gradeSchema(), Row{int64(1), "S1", nil, 7.5, nil, nil, nil})
	require.NoError(t, err)

	assert.Nil(t, rec.Float("quiz_grade"))
	require.NotNil(t, rec.Float("assignment_grade"))
	assert.Equal(t, 7.5, *rec.Float("assignment_grade"))
	assert.Equal(t, int64(0), rec.Count("student_count"))
}

func TestDecodeCoercions(t *testing.T) {
	deadline := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	rec, err := Decode(gradeSchema(), Row{[]byte("12"), []byte("S2"), []byte("8.25"), int64(9), int64(3), deadline, int64(1)})
	require.NoError(t, err)

	assert.Equal(t, int64(12), *rec.Int("assessment_id"))
	assert.Equal(t, "S2", *rec.Str("section_id"))
	assert.Equal(t, 8.25, *rec.Float("quiz_grade"))
	assert.Equal(t, 9.0, *rec.Float("assignment_grade"))
	assert.Equal(t, int64(3), rec.Count("student_count"))
	require.NotNil(t, rec.Bool("late_flag"))
	assert.True(t, *rec.Bool("late_flag"))
	require.NotNil(t, rec.TimeString("deadline"))
	assert.Equal(t, "2024-03-01 23:59:00", *rec.TimeString("deadline"))
}

func TestDecodeTimeFromString(t *testing.T) {
	schema := NewSchema(Time("submitted_at").Opt())
	rec, err := Decode(schema, Row{"2024-05-10 08:30:00"})
	require.NoError(t, err)
	require.NotNil(t, rec.Time("submitted_at"))
	assert.Equal(t, time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC), rec.Time("submitted_at").UTC())
}

func TestSchemaMinLenStopsAtLastRequired(t *testing.T) {
	schema := NewSchema(
		Int("a"),
		String("b").Opt(),
		Float("c"),
		Bool("d").Opt(),
	)
	assert.Equal(t, 3, schema.MinLen())
}
