package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 1, 11)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-11"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, d.Equal(parsed))
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"11/01/2024"`), &d)
	assert.Error(t, err)
}

func TestDateDaysUntil(t *testing.T) {
	start := NewDate(2024, 1, 1)

	assert.Equal(t, 10, start.DaysUntil(NewDate(2024, 1, 11)))
	assert.Equal(t, -5, start.DaysUntil(NewDate(2023, 12, 27)))
	assert.Equal(t, 0, start.DaysUntil(start))
	// Crosses a leap day.
	assert.Equal(t, 60, start.DaysUntil(NewDate(2024, 3, 1)))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-05-20"))
	assert.Equal(t, "2024-05-20", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, 5, 20).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-20", v)

	v, err = (Date{}).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
