package binbackend

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

type fixed interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// writer collects the encoded output.
type writer struct {
	buf []byte
}

func (w *writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	return len(p), nil
}

func write[T fixed](w io.Writer, value T) error {
	return errors.Wrap(binary.Write(w, binary.LittleEndian, value), "failed to write value")
}

func writeSize(w io.Writer, l int) error {
	if l < 0 || uint64(l) > math.MaxUint32 {
		return errors.Newf("unable to serialize length: length %d is out of range (0-%d)", l, uint32(math.MaxUint32))
	}

	return write(w, uint32(l))
}

func writeBytesWithSize(w io.Writer, bytes []byte) error {
	if err := writeSize(w, len(bytes)); err != nil {
		return errors.Wrap(err, "failed to write bytes length")
	}

	if _, err := w.Write(bytes); err != nil {
		return errors.Wrap(err, "failed to write bytes")
	}

	return nil
}

// reserve writes a zero length prefix and returns its offset for patch.
func (w *writer) reserve() int {
	offset := len(w.buf)
	w.buf = append(w.buf, 0, 0, 0, 0)

	return offset
}

func (w *writer) patch(offset int, l int) error {
	if uint64(l) > math.MaxUint32 {
		return errors.Newf("unable to serialize collection length: length %d is out of range (0-%d)", l, uint32(math.MaxUint32))
	}
	binary.LittleEndian.PutUint32(w.buf[offset:], uint32(l))

	return nil
}

// reader reads from an input that outlives the decoding, so bytes can be handed out without copying.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	return n, nil
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func read[T fixed](r io.Reader) (result T, err error) {
	return result, errors.Wrap(binary.Read(r, binary.LittleEndian, &result), "failed to read value")
}

func (r *reader) take(length int) ([]byte, error) {
	if length > r.remaining() {
		return nil, errors.Errorf("failed to read serialized bytes: remaining bytes (%d) < size (%d)", r.remaining(), length)
	}

	out := r.data[r.pos : r.pos+length : r.pos+length]
	r.pos += length

	return out, nil
}

func (r *reader) readSize() (int, error) {
	size, err := read[uint32](r)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read length prefix")
	}

	return int(size), nil
}

func (r *reader) readBytesWithSize() ([]byte, error) {
	size, err := r.readSize()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bytes size")
	}

	return r.take(size)
}
