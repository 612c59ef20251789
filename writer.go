package sinetable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/golang/snappy"
)

// Default record layout.
const (
	DefaultValueWidth = 4
	DefaultDeltaWidth = 2
	DefaultRecordSize = 8
)

const maxAddress = 1<<32 - 1

// WriterOptions define writer specific options.
type WriterOptions struct {
	// Width is the minimum number of hex digits per value.
	// Values are zero padded, wider values are never truncated.
	// Default: 4.
	Width int

	// RecordSize is the number of values per record.
	// Default: 8.
	RecordSize int

	// The compression codec to use.
	// Default: NoCompression.
	Compression Compression
}

func (o *WriterOptions) norm() *WriterOptions {
	var oo WriterOptions
	if o != nil {
		oo = *o
	}

	if oo.Width < 1 {
		oo.Width = DefaultValueWidth
	}
	if oo.Width > 16 {
		oo.Width = 16
	}
	if oo.RecordSize < 1 {
		oo.RecordSize = DefaultRecordSize
	}
	if !oo.Compression.isValid() {
		oo.Compression = NoCompression
	}

	return &oo
}

// Writer instances can write hex records.
type Writer struct {
	bw *bufio.Writer
	sw *snappy.Writer // nil unless compressed
	o  *WriterOptions

	n   int    // the number of appended values
	tmp []byte // scratch buffer
}

// NewWriter wraps a writer and returns a Writer.
func NewWriter(w io.Writer, o *WriterOptions) *Writer {
	o = o.norm()

	wr := &Writer{
		o:   o,
		tmp: make([]byte, 0, 32+o.Width),
	}
	if o.Compression == SnappyCompression {
		wr.sw = snappy.NewBufferedWriter(w)
		w = wr.sw
	}
	wr.bw = bufio.NewWriter(w)
	return wr
}

// Len returns the number of appended values.
func (w *Writer) Len() int { return w.n }

// Append appends a value. A new record is started every RecordSize values.
func (w *Writer) Append(v int64) error {
	if w.tmp == nil {
		return errClosed
	}
	if uint64(w.n) > maxAddress {
		return fmt.Errorf("sinetable: address %d exceeds %d", w.n, maxAddress)
	}

	pos := w.n % w.o.RecordSize
	buf := w.tmp[:0]
	if pos == 0 { // new record?
		buf = append(buf, '@')
		buf = appendHex(buf, uint64(w.n), 8, false)
	}
	buf = append(buf, ' ')
	buf = appendHex(buf, uint64(v), w.o.Width, true) // two's complement, like %lX
	if pos == w.o.RecordSize-1 {
		buf = append(buf, '\n')
	}
	w.tmp = buf

	if _, err := w.bw.Write(buf); err != nil {
		return err
	}
	w.n++
	return nil
}

// Close terminates a partial record and flushes the writer. It does not
// close the underlying writer.
func (w *Writer) Close() error {
	if w.tmp == nil {
		return errClosed
	}
	w.tmp = nil

	if w.n%w.o.RecordSize != 0 {
		if err := w.bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.bw.Flush(); err != nil {
		return err
	}
	if w.sw != nil {
		return w.sw.Close()
	}
	return nil
}

func appendHex(dst []byte, x uint64, width int, upper bool) []byte {
	var scratch [16]byte
	digits := strconv.AppendUint(scratch[:0], x, 16)

	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}
	if !upper {
		return append(dst, digits...)
	}
	for _, c := range digits {
		if c >= 'a' {
			c -= 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}
