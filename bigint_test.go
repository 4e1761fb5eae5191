//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"math"
	"testing"
)

var newIntTests = []struct {
	in   int64
	sign int
	text string
}{
	{0, 0, "0"},
	{1, 1, "1"},
	{-1, -1, "-1"},
	{1<<62 - 1, 1, "4611686018427387903"},
	{-(1<<62 - 1), -1, "-4611686018427387903"},
}

func TestNewInt(t *testing.T) {
	for _, tt := range newIntTests {
		v := NewInt(tt.in)
		if v.Sign() != tt.sign {
			t.Errorf("NewInt(%d).Sign() = %d, expected %d", tt.in, v.Sign(), tt.sign)
		}
		if v.Text() != tt.text {
			t.Errorf("NewInt(%d).Text() = %q, expected %q", tt.in, v.Text(), tt.text)
		}
	}
}

var cmpTests = []struct {
	a, b string
	want int
}{
	{"0", "0", 0},
	{"1", "0", 1},
	{"0", "1", -1},
	{"-1", "0", -1},
	{"0", "-1", 1},
	{"-5", "-3", -1},
	{"-3", "-5", 1},
	{"123456789012345678901234567890", "123456789012345678901234567890", 0},
	{"123456789012345678901234567891", "123456789012345678901234567890", 1},
}

func TestCmp(t *testing.T) {
	for _, tt := range cmpTests {
		a, err := ParseDecimal(tt.a)
		if err != nil {
			t.Fatal(err)
		}
		b, err := ParseDecimal(tt.b)
		if err != nil {
			t.Fatal(err)
		}
		if got := a.Cmp(b); got != tt.want {
			t.Errorf("Cmp(%s, %s) = %d, expected %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNewIntMinInt64(t *testing.T) {
	v := NewInt(math.MinInt64)
	if v.Sign() != -1 {
		t.Errorf("NewInt(MinInt64).Sign() = %d, expected -1", v.Sign())
	}
	if v.Text() != "-9223372036854775808" {
		t.Errorf("NewInt(MinInt64).Text() = %q, expected -9223372036854775808", v.Text())
	}
	if v.Neg().Text() != "9223372036854775808" {
		t.Errorf("NewInt(MinInt64).Neg().Text() = %q, expected 9223372036854775808", v.Neg().Text())
	}
}

func TestAbsNeg(t *testing.T) {
	x, _ := ParseDecimal("-42")
	if x.Abs().Text() != "42" {
		t.Errorf("Abs() = %s, expected 42", x.Abs().Text())
	}
	if x.Neg().Text() != "42" {
		t.Errorf("Neg() = %s, expected 42", x.Neg().Text())
	}
	if NewInt(0).Neg().Sign() != 0 {
		t.Errorf("Neg(0) should remain zero")
	}
}
