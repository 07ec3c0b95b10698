package packet

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the length prefix in front of every packet on the stream.
const HeaderSize = 2

// MaxPacketSize bounds a single packet payload.
const MaxPacketSize = 1 << 14

// WriteFrame writes payload prefixed with its 2-byte LE length.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxPacketSize {
		return fmt.Errorf("packet too large: %d bytes", len(payload))
	}

	frame := make([]byte, HeaderSize+len(payload))
	binary.LittleEndian.PutUint16(frame, uint16(len(payload)))
	copy(frame[HeaderSize:], payload)

	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("writing packet: %w", err)
	}
	return nil
}

// ReadFrame reads one length-prefixed packet into buf and returns the payload.
// buf must hold at least MaxPacketSize bytes; the result aliases it.
func ReadFrame(r io.Reader, buf []byte) ([]byte, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}

	size := int(binary.LittleEndian.Uint16(header[:]))
	if size == 0 || size > MaxPacketSize || size > len(buf) {
		return nil, fmt.Errorf("invalid packet size: %d", size)
	}

	if _, err := io.ReadFull(r, buf[:size]); err != nil {
		return nil, fmt.Errorf("reading packet body: %w", err)
	}
	return buf[:size], nil
}
