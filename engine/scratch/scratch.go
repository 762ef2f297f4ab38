// Package scratch is a per-frame byte buffer for short-lived labels.
// Strings handed out are views into the buffer: they stay valid until the
// next Reset and must not be kept across frames.
package scratch

import (
	"log"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

type Buffer struct {
	buf []byte
	// reports growth past the initial capacity when set
	Logger *log.Logger
}

// New returns a buffer with room for capacity bytes.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
// Call this once per frame, before building labels.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Cap() int { return cap(b.buf) }
func (b *Buffer) Len() int { return len(b.buf) }

// Mark returns a bookmark to later slice the output.
func (b *Buffer) Mark() int { return len(b.buf) }

// View is a zero-copy string of the bytes written since mark.
func (b *Buffer) View(mark int) string {
	s := b.buf[mark:]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}

// ensure makes room for n more bytes, doubling the capacity when short.
func (b *Buffer) ensure(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf) * 2
	if newCap < len(b.buf)+n {
		newCap = len(b.buf) + n
	}
	nb := make([]byte, len(b.buf), newCap)
	copy(nb, b.buf)
	b.buf = nb
	if b.Logger != nil {
		b.Logger.Printf("scratch: grew to %d bytes", newCap)
	}
}

// ----- Append primitives (chainable) -----

func (b *Buffer) S(s string) *Buffer {
	b.ensure(len(s))
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.ensure(1)
	b.buf = append(b.buf, c)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.ensure(utf8.UTFMax)
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.ensure(20)
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// F appends a float with prec digits after the decimal point.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.ensure(24 + max(prec, 0))
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// Pad appends n copies of c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	if n <= 0 {
		return b
	}
	b.ensure(n)
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, c)
	}
	return b
}

// Percent writes "label: 25%" for a value in [0,1] and returns it.
func (b *Buffer) Percent(label string, v float32) string {
	mark := b.Mark()
	if label != "" {
		b.S(label).S(": ")
	}
	b.I(int(v*100 + 0.5)).C('%')
	return b.View(mark)
}

// ----- Minimal % formatter -----
// Supports %s %d %f (with .prec) %t and %%.
//
//	buf.Sprintf("%s: %.2f ms", name, ms)
//
// The result is a view, like View.
func (b *Buffer) Sprintf(format string, args ...any) string {
	var ai int
	mark := len(b.buf)
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			b.C(ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.C('%')
			i++
			continue
		}
		// verb with optional .precision
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec, _ = strconv.Atoi(format[start:i])
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		switch format[i] {
		case 's':
			b.S(toString(args[ai]))
		case 'd':
			b.ensure(20)
			b.buf = strconv.AppendInt(b.buf, toInt64(args[ai]), 10)
		case 'f':
			if prec < 0 {
				prec = 3
			}
			b.F(toFloat64(args[ai]), prec)
		case 't':
			b.ensure(5)
			b.buf = strconv.AppendBool(b.buf, args[ai] == true)
		default:
			// unknown verb, write literally
			b.C('%').C(format[i])
		}
		ai++
	}
	return b.View(mark)
}

// ----- tiny helpers -----

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case interface{ String() string }:
		return x.String()
	default:
		return "<unsupported>"
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}
