package sinetable

import (
	"fmt"
	"io"
	"math"
)

// Table is a generated quarter-wave sine table.
type Table struct {
	// Values holds Indices()+1 quantized samples. The last one is the
	// boundary sample and is only referenced by the last delta.
	Values []int64
	// Deltas holds Indices() differences between consecutive values.
	Deltas []int64
}

// Generate computes a table for the given parameters. A nil p uses the
// defaults.
func Generate(p *Params) (*Table, error) {
	p = p.norm()
	n, err := p.indices()
	if err != nil {
		return nil, err
	}

	values := make([]int64, n+1)
	for i := range values {
		dvalue := math.Sin((p.Pi / 2 * float64(i)) / float64(n))
		values[i] = int64(float64(p.Scale) * dvalue) // truncates toward zero
	}

	deltas := make([]int64, n)
	for i := range deltas {
		deltas[i] = values[i+1] - values[i]
	}

	return &Table{Values: values, Deltas: deltas}, nil
}

// Indices returns the number of emitted indices.
func (t *Table) Indices() int { return len(t.Deltas) }

// WriteValues writes the quantized values as hex records to w.
func (t *Table) WriteValues(w io.Writer, o *WriterOptions) error {
	return writeRecords(w, o, t.Values[:t.Indices()])
}

// WriteDeltas writes the deltas as hex records to w. Unless set, the value
// width defaults to DefaultDeltaWidth.
func (t *Table) WriteDeltas(w io.Writer, o *WriterOptions) error {
	oo := o.norm()
	if o == nil || o.Width < 1 {
		oo.Width = DefaultDeltaWidth
	}
	return writeRecords(w, oo, t.Deltas)
}

// Verify checks the table against p.
func (t *Table) Verify(p *Params) error {
	p = p.norm()
	n, err := p.indices()
	if err != nil {
		return err
	}

	if len(t.Values) != n+1 {
		return fmt.Errorf("sinetable: expected %d values, got %d", n+1, len(t.Values))
	}
	if len(t.Deltas) != n {
		return fmt.Errorf("sinetable: expected %d deltas, got %d", n, len(t.Deltas))
	}
	if t.Values[0] != 0 {
		return fmt.Errorf("sinetable: first value must be 0, got %d", t.Values[0])
	}
	if t.Values[n] != p.Scale {
		return fmt.Errorf("sinetable: boundary value must be %d, got %d", p.Scale, t.Values[n])
	}
	return verifySums(t.Values, t.Deltas)
}

// VerifyFiles checks values and deltas read back from record files. Unlike
// Table.Verify, values excludes the boundary sample, which is implied by the
// last delta.
func VerifyFiles(values, deltas []int64, p *Params) error {
	p = p.norm()
	n, err := p.indices()
	if err != nil {
		return err
	}

	if len(values) != n {
		return fmt.Errorf("sinetable: expected %d values, got %d", n, len(values))
	}
	if len(deltas) != n {
		return fmt.Errorf("sinetable: expected %d deltas, got %d", n, len(deltas))
	}
	if values[0] != 0 {
		return fmt.Errorf("sinetable: first value must be 0, got %d", values[0])
	}
	if err := verifySums(values, deltas[:n-1]); err != nil {
		return err
	}
	if last := values[n-1] + deltas[n-1]; last != p.Scale {
		return fmt.Errorf("sinetable: boundary value must be %d, got %d", p.Scale, last)
	}
	return nil
}

// verifySums checks values[i] == values[0] + sum(deltas[0..i-1]) for every
// value covered by deltas.
func verifySums(values, deltas []int64) error {
	acc := values[0]
	for i, d := range deltas {
		acc += d
		if acc != values[i+1] {
			return fmt.Errorf("sinetable: delta sum mismatch at %d, %d must be %d", i+1, acc, values[i+1])
		}
	}
	return nil
}

func writeRecords(w io.Writer, o *WriterOptions, vals []int64) error {
	rw := NewWriter(w, o)
	defer rw.Close()

	for _, v := range vals {
		if err := rw.Append(v); err != nil {
			return err
		}
	}
	return rw.Close()
}
