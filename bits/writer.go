package bits

import (
	"encoding/binary"
	"fmt"
	"math"
)

type BitWriter struct {
	pos   int
	data  []byte
	size  int
	order binary.ByteOrder

	growingEnabled bool
}

func NewEncodeBuffer(buf []byte, order binary.ByteOrder) BitWriter {

	result := BitWriter{}

	result.data = buf
	result.pos = 0
	result.size = len(buf)
	result.order = order

	return result
}

func (this *BitWriter) EnableGrowing() {
	this.growingEnabled = true
}

func (this BitWriter) Position() int {
	return this.pos
}

func (this *BitWriter) grow(atLeast int) {

	newSize := this.size * 2
	if this.pos+atLeast > newSize {
		newSize = this.pos + atLeast
	}

	newBuf := make([]byte, newSize)

	copy(newBuf, this.data[:this.pos])
	this.data = newBuf
	this.size = newSize
}

func (this *BitWriter) tryGrow(n int) {
	if (this.pos + n) > this.size {
		if this.growingEnabled {
			this.grow(n)
		} else {
			panic(fmt.Sprintf("bit writer growing is disabled on pos : %d, try grow %d, from size : %d", this.pos, n, this.size))
		}
	}
}

func (this *BitWriter) Write(p []byte) (n int, err error) {

	this.tryGrow(len(p))

	n = copy(this.data[this.pos:], p)
	this.pos += n

	return
}

// EmptyBytes skips i zeroed bytes.
func (this *BitWriter) EmptyBytes(i int) {
	this.tryGrow(i)
	clear(this.data[this.pos : this.pos+i])
	this.pos += i
}

func (this *BitWriter) Bytes() []byte {
	return this.data[:this.pos]
}

func (this *BitWriter) PutUint64(v uint64) {
	this.tryGrow(8)
	this.order.PutUint64(this.data[this.pos:], v)
	this.pos += 8
}

func (this *BitWriter) WriteByte(u byte) error {
	this.tryGrow(1)
	this.data[this.pos] = u
	this.pos++
	return nil
}

func (this *BitWriter) PutFloat64(f float64) {
	this.tryGrow(8)
	this.order.PutUint64(this.data[this.pos:], math.Float64bits(f))
	this.pos += 8
}
