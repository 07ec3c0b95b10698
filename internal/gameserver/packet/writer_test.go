package packet

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestWriter_WriteByte(t *testing.T) {
	w := NewWriter(16)

	if err := w.WriteByte(0x42); err != nil {
		t.Fatalf("WriteByte failed: %v", err)
	}

	data := w.Bytes()
	if len(data) != 1 {
		t.Fatalf("expected length 1, got %d", len(data))
	}
	if data[0] != 0x42 {
		t.Errorf("expected byte 0x42, got 0x%02X", data[0])
	}
}

func TestWriter_WriteInt(t *testing.T) {
	w := NewWriter(16)

	w.WriteInt(0x12345678)

	data := w.Bytes()
	if len(data) != 4 {
		t.Fatalf("expected length 4, got %d", len(data))
	}

	val := int32(binary.LittleEndian.Uint32(data))
	if val != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08X", val)
	}
}

func TestWriter_WriteFloat(t *testing.T) {
	w := NewWriter(16)

	w.WriteFloat(0.1)

	data := w.Bytes()
	if len(data) != 4 {
		t.Fatalf("expected length 4, got %d", len(data))
	}

	val := math.Float32frombits(binary.LittleEndian.Uint32(data))
	if val != float32(0.1) {
		t.Errorf("expected 0.1, got %v", val)
	}
}

func TestWriter_WriteString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []byte{0x00},
		},
		{
			name:     "ASCII string",
			input:    "mine",
			expected: []byte{'m', 'i', 'n', 'e', 0x00},
		},
		{
			name:     "CP437 box drawing",
			input:    "é░",
			expected: []byte{0x82, 0xB0, 0x00},
		},
		{
			name:     "unmappable rune",
			input:    "a€b",
			expected: []byte{'a', '?', 'b', 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(64)
			w.WriteString(tt.input)

			data := w.Bytes()
			if len(data) != len(tt.expected) {
				t.Fatalf("expected length %d, got %d (% X)", len(tt.expected), len(data), data)
			}
			for i, expected := range tt.expected {
				if data[i] != expected {
					t.Errorf("at index %d: expected 0x%02X, got 0x%02X", i, expected, data[i])
				}
			}
		})
	}
}

func TestWriter_Multiple(t *testing.T) {
	w := NewWriter(32)

	if err := w.WriteByte(0x06); err != nil { // opcode
		t.Fatalf("WriteByte failed: %v", err)
	}
	w.WriteFloat(1.5)
	w.WriteInt(-2)

	data := w.Bytes()
	if len(data) != 9 {
		t.Fatalf("expected length 9, got %d", len(data))
	}
	if data[0] != 0x06 {
		t.Errorf("expected opcode 0x06, got 0x%02X", data[0])
	}
	if f := math.Float32frombits(binary.LittleEndian.Uint32(data[1:])); f != 1.5 {
		t.Errorf("expected 1.5, got %v", f)
	}
	if v := int32(binary.LittleEndian.Uint32(data[5:])); v != -2 {
		t.Errorf("expected -2, got %d", v)
	}
}

func TestWriter_PoolReset(t *testing.T) {
	w := Get()
	w.WriteInt(0x12345678)
	w.Put()

	w = Get()
	defer w.Put()
	if w.Len() != 0 {
		t.Errorf("expected pooled writer to be reset, got length %d", w.Len())
	}
}
