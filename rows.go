package oledterm

// RowBuffer is a fixed number of fixed-capacity text rows. Every row is
// terminated by a zero byte; the bytes after the terminator are unspecified.
type RowBuffer struct {
	rows [][]byte
}

// NewRowBuffer allocates rows rows of size bytes each. All memory is
// allocated up front, so appending never allocates.
func NewRowBuffer(rows, size int) *RowBuffer {
	storage := make([]byte, rows*size)
	b := &RowBuffer{rows: make([][]byte, rows)}
	for i := range b.rows {
		b.rows[i] = storage[i*size : (i+1)*size : (i+1)*size]
	}
	return b
}

// Rows returns the number of rows.
func (b *RowBuffer) Rows() int {
	return len(b.rows)
}

// Capacity returns the storage size of a row, including the terminator.
func (b *RowBuffer) Capacity() int {
	return len(b.rows[0])
}

// Reset empties all rows.
func (b *RowBuffer) Reset() {
	for i := range b.rows {
		b.Clear(i)
	}
}

// Append writes c at offset in the given row and terminates the row right
// after it. The offset must leave room for the terminator; Append returns
// false and leaves the row untouched otherwise.
func (b *RowBuffer) Append(row, offset int, c byte) bool {
	r := b.rows[row]
	if offset < 0 || offset >= len(r)-1 {
		return false
	}
	r[offset] = c
	r[offset+1] = 0
	return true
}

// Line returns the text of a row up to its terminator. The returned slice
// aliases the row storage and is only valid until the next mutation.
func (b *RowBuffer) Line(row int) []byte {
	r := b.rows[row]
	for i, c := range r {
		if c == 0 {
			return r[:i]
		}
	}
	return r[:len(r)-1]
}

// Clear empties a single row.
func (b *RowBuffer) Clear(row int) {
	b.rows[row][0] = 0
}

// Scroll drops the first row and moves all other rows up by one. The last
// row is left empty.
func (b *RowBuffer) Scroll() {
	n := len(b.rows)
	for i := 0; i < n-1; i++ {
		copy(b.rows[i], b.rows[i+1])
	}
	b.Clear(n - 1)
}
