package replay

import (
	"encoding/binary"
	"io"

	"github.com/1siamBot/invaders/engine/core"
)

// Record is the input held on one frame
type Record struct {
	Frame uint64
	Input core.Input
}

// recordSize is the encoded size of a Record
const recordSize = 8 + 1

// Encode writes a record to binary
func (r *Record) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, r.Frame); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint8(r.Input))
}

// Decode reads a record from binary. A stream that ends exactly between two
// records returns io.EOF; a record cut short returns io.ErrUnexpectedEOF.
func (r *Record) Decode(rd io.Reader) error {
	var buf [recordSize]byte
	if _, err := io.ReadFull(rd, buf[:]); err != nil {
		return err
	}
	r.Frame = binary.LittleEndian.Uint64(buf[:8])
	r.Input = core.Input(buf[8])
	return nil
}
