// Package nativemsg implements the Chrome native-messaging wire protocol
// and the action dispatch a browser extension uses to talk to jobtailor.
// Each message is a 4-byte little-endian length prefix followed by JSON.
package nativemsg

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/jobtailor"
)

// MaxIncomingSize caps messages read from the browser. Full page HTML for
// large job boards fits comfortably under this.
const MaxIncomingSize = 32 << 20

// MaxOutgoingSize caps messages written to the browser. Chrome rejects
// host messages over 1 MiB.
const MaxOutgoingSize = 1 << 20

// ReadMessage reads one length-prefixed JSON message into v.
// Returns io.EOF when the stream is cleanly closed.
func ReadMessage(r io.Reader, v any) error {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return fmt.Errorf("truncated message header: %w", err)
		}
		return err
	}

	size := binary.LittleEndian.Uint32(header[:])
	if size > MaxIncomingSize {
		return jobtailor.Errorf(jobtailor.EINVALID, "message size %d exceeds limit", size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return fmt.Errorf("truncated message body: %w", err)
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return jobtailor.Errorf(jobtailor.EINVALID, "malformed message: %v", err)
	}
	return nil
}

// WriteMessage writes v as one length-prefixed JSON message.
func WriteMessage(w io.Writer, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}
	if len(payload) > MaxOutgoingSize {
		return jobtailor.Errorf(jobtailor.EINVALID, "message size %d exceeds limit", len(payload))
	}

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}
