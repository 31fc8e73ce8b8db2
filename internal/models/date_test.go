package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-01"}`), &payload))
	assert.Equal(t, NewDate(2024, time.January, 1), payload.Date)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-01"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"01/02/2024"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"date":20240101}`), &payload))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan("2024-03-06"))
	assert.Equal(t, "2024-03-06", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-07T00:00:00Z")))
	assert.Equal(t, "2024-03-07", d.String())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2024, time.December, 31).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", v)
}
