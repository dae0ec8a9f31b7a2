package pool

import "sync"

const (
	// DigitBufferDefaultSize covers a 128-bit value with sign and padding.
	DigitBufferDefaultSize = 64
	// DigitBufferMaxThreshold is the largest buffer returned to the pool.
	DigitBufferMaxThreshold = 4096
)

// DigitBuffer collects encoded digits least-significant first.
//
// Encoders append digits, then padding, then the sign, and finally call
// Reverse so the most significant character comes first.
type DigitBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewDigitBuffer creates a new DigitBuffer with the specified capacity.
func NewDigitBuffer(capacity int) *DigitBuffer {
	return &DigitBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Reset empties the buffer but keeps its memory.
func (db *DigitBuffer) Reset() {
	db.B = db.B[:0]
}

// Len returns the number of buffered characters.
func (db *DigitBuffer) Len() int {
	return len(db.B)
}

// Cap returns the capacity of the buffer.
func (db *DigitBuffer) Cap() int {
	return cap(db.B)
}

// WriteByte appends a single character. It never fails.
func (db *DigitBuffer) WriteByte(c byte) error {
	db.B = append(db.B, c)
	return nil
}

// Fill appends c until the buffer holds at least n characters.
func (db *DigitBuffer) Fill(c byte, n int) {
	for len(db.B) < n {
		db.B = append(db.B, c)
	}
}

// Grow ensures room for n more characters without reallocating.
func (db *DigitBuffer) Grow(n int) {
	if cap(db.B)-len(db.B) >= n {
		return
	}

	newBuf := make([]byte, len(db.B), len(db.B)+n)
	copy(newBuf, db.B)
	db.B = newBuf
}

// Reverse reverses the buffered characters in place.
func (db *DigitBuffer) Reverse() {
	for i, j := 0, len(db.B)-1; i < j; i, j = i+1, j-1 {
		db.B[i], db.B[j] = db.B[j], db.B[i]
	}
}

// String returns a copy of the buffered characters.
func (db *DigitBuffer) String() string {
	return string(db.B)
}

// DigitBufferPool is a sync.Pool of DigitBuffers.
//
// Buffers that grew beyond maxThreshold are dropped on Put so a single huge
// value does not pin memory for the lifetime of the process.
type DigitBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewDigitBufferPool creates a pool whose fresh buffers have defaultSize capacity.
func NewDigitBufferPool(defaultSize int, maxThreshold int) *DigitBufferPool {
	return &DigitBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewDigitBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty DigitBuffer from the pool.
func (p *DigitBufferPool) Get() *DigitBuffer {
	db, _ := p.pool.Get().(*DigitBuffer)
	return db
}

// Put returns a DigitBuffer to the pool.
func (p *DigitBufferPool) Put(db *DigitBuffer) {
	if db == nil {
		return
	}

	if p.maxThreshold > 0 && cap(db.B) > p.maxThreshold {
		return
	}

	db.Reset()
	p.pool.Put(db)
}

var digitDefaultPool = NewDigitBufferPool(DigitBufferDefaultSize, DigitBufferMaxThreshold)

// GetDigitBuffer retrieves a DigitBuffer from the default pool.
func GetDigitBuffer() *DigitBuffer {
	return digitDefaultPool.Get()
}

// PutDigitBuffer returns a DigitBuffer to the default pool.
func PutDigitBuffer(db *DigitBuffer) {
	digitDefaultPool.Put(db)
}
