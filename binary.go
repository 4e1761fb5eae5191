//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import "strings"

// ParseBinary parses a signed base-2 literal, e.g. "-1010" or
// "0b1010". The "0b"/"0B" prefix is optional.
func ParseBinary(s string) (*Int, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B") {
		s = s[2:]
	}
	if len(s) == 0 {
		return nil, ErrSyntax
	}
	for _, r := range s {
		if r != '0' && r != '1' {
			return nil, ErrSyntax
		}
	}

	result := &Int{}
	two := NewInt(2)
	for _, r := range s {
		result = result.Mul(two)
		if r == '1' {
			result = result.Add(one1)
		}
	}
	if neg {
		result = result.Neg()
	}
	return result, nil
}

// TextBinary returns the signed base-2 representation of x in
// canonical form: an optional leading "-", the literal prefix "0b",
// then one or more binary digits with no leading zero (zero itself
// renders as "0b0").
func (x *Int) TextBinary() string {
	if x.sign == 0 {
		return "0b0"
	}
	v := x.Abs()
	two := NewInt(2)
	var bits []byte
	for !v.IsZero() {
		q, r, _ := v.QuoRem(two)
		if r.IsZero() {
			bits = append(bits, '0')
		} else {
			bits = append(bits, '1')
		}
		v = q
	}
	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}
	b.WriteString("0b")
	for i := len(bits) - 1; i >= 0; i-- {
		b.WriteByte(bits[i])
	}
	return b.String()
}
