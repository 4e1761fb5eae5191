//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"errors"
	"strings"
)

// decimalChunkDigits is the number of decimal digits processed per
// multiply-accumulate step; 10^decimalChunkDigits must fit
// comfortably inside a native int64.
const decimalChunkDigits = 18

var pow10 [decimalChunkDigits + 1]int64

func init() {
	pow10[0] = 1
	for i := 1; i < len(pow10); i++ {
		pow10[i] = pow10[i-1] * 10
	}
}

// ErrSyntax is returned by ParseDecimal and ParseBinary when the
// input is not a well-formed literal.
var ErrSyntax = errors.New("bigint: invalid syntax")

// ParseDecimal parses a signed base-10 literal, e.g. "-1234" or
// "987654321098765432109876543210".
func ParseDecimal(s string) (*Int, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, ErrSyntax
		}
	}

	result := &Int{}
	chunkBase := NewInt(pow10[decimalChunkDigits])

	first := len(s) % decimalChunkDigits
	if first == 0 {
		first = decimalChunkDigits
	}
	pos := 0
	for pos < len(s) {
		n := first
		if pos > 0 {
			n = decimalChunkDigits
		}
		chunk := s[pos : pos+n]
		var v int64
		for _, r := range chunk {
			v = v*10 + int64(r-'0')
		}
		if pos == 0 {
			result = NewInt(v)
		} else {
			result = result.Mul(chunkBase).Add(NewInt(v))
		}
		pos += n
	}

	if neg {
		result = result.Neg()
	}
	return result, nil
}

// Text returns the signed base-10 representation of x, with no
// leading zeros (other than "0" itself).
func (x *Int) Text() string {
	if x.sign == 0 {
		return "0"
	}
	chunkBase := NewInt(pow10[decimalChunkDigits])
	var chunks []int64
	v := x.Abs()
	for !v.IsZero() {
		q, r, _ := v.QuoRem(chunkBase)
		chunks = append(chunks, r.toInt64())
		v = q
	}

	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}
	for i := len(chunks) - 1; i >= 0; i-- {
		if i == len(chunks)-1 {
			b.WriteString(itoa(chunks[i]))
		} else {
			s := itoa(chunks[i])
			for j := len(s); j < decimalChunkDigits; j++ {
				b.WriteByte('0')
			}
			b.WriteString(s)
		}
	}
	return b.String()
}

// String implements fmt.Stringer, returning the same value as Text.
func (x *Int) String() string {
	return x.Text()
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	var buf [24]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
