package jsonwire

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMarshalBuffer(t *testing.T) {
	buf := getMarshalBuffer()
	if buf == nil {
		t.Fatal("getMarshalBuffer returned nil")
	}
	if buf.Len() != 0 {
		t.Errorf("buffer should be empty, got len=%d", buf.Len())
	}
	if buf.Cap() < marshalBufferInitialSize {
		t.Errorf("buffer capacity should be at least %d, got %d", marshalBufferInitialSize, buf.Cap())
	}
	putMarshalBuffer(buf)
}

func TestPutMarshalBuffer_Nil(t *testing.T) {
	// Should not panic
	putMarshalBuffer(nil)
}

func TestPutMarshalBuffer_Oversized(t *testing.T) {
	oversized := bytes.NewBuffer(make([]byte, 0, marshalBufferMaxSize+1))
	oversized.Write(make([]byte, marshalBufferMaxSize+1))

	// This should not panic and should not return the buffer to the pool
	putMarshalBuffer(oversized)

	buf := getMarshalBuffer()
	if buf.Cap() > marshalBufferMaxSize {
		t.Errorf("pool returned oversized buffer with cap=%d", buf.Cap())
	}
	putMarshalBuffer(buf)
}

func TestMarshalWithExtras(t *testing.T) {
	base := map[string]any{"type": "object"}
	extras := map[string]any{"x-internal": true}

	data, err := MarshalWithExtras(base, extras)
	require.NoError(t, err)

	var round map[string]any
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "object", round["type"])
	assert.Equal(t, true, round["x-internal"])
}

func TestMarshalWithExtras_NoTrailingNewline(t *testing.T) {
	data, err := MarshalWithExtras(map[string]any{"a": 1}, nil)
	require.NoError(t, err)
	assert.False(t, bytes.HasSuffix(data, []byte("\n")))
}

func TestMarshalWithExtras_IndependentCopy(t *testing.T) {
	first, err := MarshalWithExtras(map[string]any{"a": "first"}, nil)
	require.NoError(t, err)
	snapshot := string(first)

	// A second marshal reuses the pooled buffer; the first result must not change.
	_, err = MarshalWithExtras(map[string]any{"b": "second value that is longer"}, nil)
	require.NoError(t, err)
	assert.Equal(t, snapshot, string(first))
}
