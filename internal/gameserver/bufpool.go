package gameserver

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/udisondev/minefield/internal/gameserver/packet"
)

// BytePool is a pool of reusable []byte buffers.
// Used for inbound frames and for framed outbound packets owned by the
// write queue.
type BytePool struct {
	pool sync.Pool
}

// NewBytePool creates a buffer pool with the specified default capacity for new slices.
func NewBytePool(defaultCap int) *BytePool {
	p := &BytePool{}
	p.pool.New = func() any {
		return make([]byte, 0, defaultCap)
	}
	return p
}

// Get returns a zeroed slice of length size, preferably from the pool.
func (p *BytePool) Get(size int) []byte {
	b := p.pool.Get().([]byte)
	if cap(b) < size {
		p.pool.Put(b)
		return make([]byte, size)
	}
	b = b[:size]
	clear(b)
	return b
}

// Put returns the slice to the pool for reuse.
func (p *BytePool) Put(b []byte) {
	if b == nil {
		return
	}
	p.pool.Put(b[:0])
}

// Frame copies payload behind its length prefix into a pooled buffer.
// The caller owns the result and hands it back with Put.
func (p *BytePool) Frame(payload []byte) ([]byte, error) {
	if len(payload) > packet.MaxPacketSize {
		return nil, fmt.Errorf("packet too large: %d bytes", len(payload))
	}

	buf := p.Get(packet.HeaderSize + len(payload))
	binary.LittleEndian.PutUint16(buf, uint16(len(payload)))
	copy(buf[packet.HeaderSize:], payload)
	return buf, nil
}
