//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import "testing"

var binaryTests = []struct {
	decimal string
	binary  string
}{
	{"0", "0b0"},
	{"1", "0b1"},
	{"-1", "-0b1"},
	{"2", "0b10"},
	{"10", "0b1010"},
	{"-10", "-0b1010"},
	{"255", "0b11111111"},
	{"256", "0b100000000"},
}

func TestBinaryFormat(t *testing.T) {
	for _, tt := range binaryTests {
		x, err := ParseDecimal(tt.decimal)
		if err != nil {
			t.Fatal(err)
		}
		if got := x.TextBinary(); got != tt.binary {
			t.Errorf("%s.TextBinary() = %s, expected %s", tt.decimal, got, tt.binary)
		}
	}
}

func TestParseBinary(t *testing.T) {
	for _, tt := range binaryTests {
		x, err := ParseBinary(tt.binary)
		if err != nil {
			t.Fatal(err)
		}
		if got := x.Text(); got != tt.decimal {
			t.Errorf("ParseBinary(%s).Text() = %s, expected %s", tt.binary, got, tt.decimal)
		}
	}
}

func TestParseBinaryPrefix(t *testing.T) {
	x, err := ParseBinary("0b1010")
	if err != nil {
		t.Fatal(err)
	}
	if x.Text() != "10" {
		t.Errorf("ParseBinary(\"0b1010\").Text() = %s, expected 10", x.Text())
	}
}

func TestBinarySyntaxErrors(t *testing.T) {
	for _, v := range []string{"", "-", "012", "1b01"} {
		if _, err := ParseBinary(v); err != ErrSyntax {
			t.Errorf("ParseBinary(%q): got %v, expected ErrSyntax", v, err)
		}
	}
}
