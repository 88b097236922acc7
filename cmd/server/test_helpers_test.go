package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// jsonBody encodes a payload for use as a request body in tests.
func jsonBody(t *testing.T, payload interface{}) io.Reader {
	t.Helper()

	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(payload))
	return &body
}
