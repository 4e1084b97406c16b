package nativemsg_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/nativemsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMessage(t *testing.T) {
	t.Parallel()

	t.Run("writes little-endian length prefix", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := nativemsg.WriteMessage(&buf, map[string]string{"action": "getStats"})
		require.NoError(t, err)

		raw := buf.Bytes()
		require.Greater(t, len(raw), 4)

		size := binary.LittleEndian.Uint32(raw[:4])
		assert.Equal(t, int(size), len(raw)-4)
		assert.JSONEq(t, `{"action":"getStats"}`, string(raw[4:]))
	})

	t.Run("rejects oversized payloads", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		big := map[string]string{"html": string(make([]byte, nativemsg.MaxOutgoingSize+1))}
		err := nativemsg.WriteMessage(&buf, big)
		require.Error(t, err)
		assert.Equal(t, jobtailor.EINVALID, jobtailor.ErrorCode(err))
	})
}

func TestReadMessage(t *testing.T) {
	t.Parallel()

	t.Run("round trips a request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		sent := &nativemsg.Request{Action: "checkJobPage", URL: "https://example.com/careers/sre"}
		require.NoError(t, nativemsg.WriteMessage(&buf, sent))

		var got nativemsg.Request
		require.NoError(t, nativemsg.ReadMessage(&buf, &got))
		assert.Equal(t, *sent, got)
	})

	t.Run("returns EOF on closed stream", func(t *testing.T) {
		t.Parallel()

		var got nativemsg.Request
		err := nativemsg.ReadMessage(bytes.NewReader(nil), &got)
		assert.Equal(t, io.EOF, err)
	})

	t.Run("errors on truncated body", func(t *testing.T) {
		t.Parallel()

		raw := make([]byte, 4)
		binary.LittleEndian.PutUint32(raw, 100)
		raw = append(raw, []byte(`{"action":`)...)

		var got nativemsg.Request
		err := nativemsg.ReadMessage(bytes.NewReader(raw), &got)
		require.Error(t, err)
		assert.NotEqual(t, io.EOF, err)
	})

	t.Run("rejects oversized declared length", func(t *testing.T) {
		t.Parallel()

		raw := make([]byte, 4)
		binary.LittleEndian.PutUint32(raw, nativemsg.MaxIncomingSize+1)

		var got nativemsg.Request
		err := nativemsg.ReadMessage(bytes.NewReader(raw), &got)
		require.Error(t, err)
		assert.Equal(t, jobtailor.EINVALID, jobtailor.ErrorCode(err))
	})

	t.Run("errors on malformed JSON", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{"action":`)
		raw := make([]byte, 4)
		binary.LittleEndian.PutUint32(raw, uint32(len(payload)))
		raw = append(raw, payload...)

		var got nativemsg.Request
		err := nativemsg.ReadMessage(bytes.NewReader(raw), &got)
		require.Error(t, err)
		assert.Equal(t, jobtailor.EINVALID, jobtailor.ErrorCode(err))
	})
}
