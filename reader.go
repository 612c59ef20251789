package sinetable

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/golang/snappy"
)

// snappyMagic is the stream identifier chunk of a snappy framed stream.
var snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")

// Reader instances can iterate across values stored in hex records.
type Reader struct {
	br  *bufio.Reader
	eof bool

	line   []byte   // current record
	fields [][]byte // remaining values of the current record
	n      int      // number of values read

	addr uint32 // current address
	val  int64  // current value
	err  error
}

// NewReader opens a reader. Snappy compressed input is detected and
// decompressed transparently.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)

	var src io.Reader = br
	head, err := br.Peek(len(snappyMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if bytes.Equal(head, snappyMagic) {
		src = snappy.NewReader(br)
	}

	return &Reader{br: bufio.NewReader(src)}, nil
}

// ReadAll reads all values from r.
func ReadAll(r io.Reader) ([]int64, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	var vals []int64
	for rd.Next() {
		vals = append(vals, rd.Value())
	}
	return vals, rd.Err()
}

// Address returns the address of the current value.
func (r *Reader) Address() uint32 { return r.addr }

// Value returns the current value.
func (r *Reader) Value() int64 { return r.val }

// Err exposes reader errors, if any.
func (r *Reader) Err() error { return r.err }

// Next advances the cursor to the next value and returns true if successful.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}

	for len(r.fields) == 0 {
		if r.eof {
			return false
		}

		line, err := r.readLine()
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			r.err = err
			return false
		}
		if r.err = r.parseRecord(line); r.err != nil {
			return false
		}
	}

	u, err := strconv.ParseUint(string(r.fields[0]), 16, 64)
	if err != nil {
		r.err = fmt.Errorf("%w: value %q at %08x", ErrBadRecord, r.fields[0], r.n)
		return false
	}

	r.addr = uint32(r.n)
	r.val = int64(u)
	r.fields = r.fields[1:]
	r.n++
	return true
}

// readLine reads a full line, regardless of its length.
func (r *Reader) readLine() ([]byte, error) {
	r.line = r.line[:0]
	for {
		chunk, err := r.br.ReadSlice('\n')
		r.line = append(r.line, chunk...)
		if err != bufio.ErrBufferFull {
			return r.line, err
		}
	}
}

func (r *Reader) parseRecord(line []byte) error {
	line = bytes.TrimRight(line, "\r\n")
	fields := bytes.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	head := fields[0]
	if head[0] != '@' {
		return fmt.Errorf("%w: missing address in %q", ErrBadRecord, line)
	}
	addr, err := strconv.ParseUint(string(head[1:]), 16, 32)
	if err != nil {
		return fmt.Errorf("%w: address %q", ErrBadRecord, head)
	}
	if addr != uint64(r.n) {
		return fmt.Errorf("%w: %08x must be %08x", ErrBadAddress, addr, r.n)
	}

	r.fields = fields[1:]
	return nil
}
