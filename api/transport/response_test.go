package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelopeShape(t *testing.T) {
	envelope := NewSuccess(map[string]int64{"id": 7}, ListMeta{Limit: 100, Offset: 0, Count: 1})

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "success", decoded["status"])
	assert.Contains(t, decoded, "data")
	assert.Contains(t, decoded, "meta")
	assert.NotContains(t, decoded, "error")
	assert.NotContains(t, decoded, "code")
}

func TestErrorEnvelopeShape(t *testing.T) {
	envelope := NewError("NOT_FOUND", "booking not found", nil)

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "NOT_FOUND", decoded["code"])
	assert.Equal(t, "booking not found", decoded["error"])
	assert.NotContains(t, decoded, "data")
}

func TestEnvelopeString(t *testing.T) {
	envelope := NewSuccess(nil, nil)
	assert.JSONEq(t, `{"status":"success"}`, envelope.String())
}
