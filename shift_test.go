//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"strings"
	"testing"
)

func TestLshSmall(t *testing.T) {
	x := NewInt(1)
	got, err := x.Lsh(NewInt(10))
	if err != nil {
		t.Fatal(err)
	}
	if got.Text() != "1024" {
		t.Errorf("1 << 10 = %s, expected 1024", got.Text())
	}
}

func TestRshNegativeOne(t *testing.T) {
	x := NewInt(-1)
	got, err := x.Rsh(NewInt(1000))
	if err != nil {
		t.Fatal(err)
	}
	if got.Text() != "-1" {
		t.Errorf("(-1) >> 1000 = %s, expected -1", got.Text())
	}
}

func TestRshPowerOfTwo(t *testing.T) {
	bin := "1" + strings.Repeat("0", 1000)
	x, err := ParseBinary(bin)
	if err != nil {
		t.Fatal(err)
	}
	got, err := x.Rsh(NewInt(1000))
	if err != nil {
		t.Fatal(err)
	}
	if got.Text() != "1" {
		t.Errorf("2^1000 >> 1000 = %s, expected 1", got.Text())
	}
}

func TestRshAllOnes(t *testing.T) {
	bin := strings.Repeat("1", 1000)
	x, err := ParseBinary(bin)
	if err != nil {
		t.Fatal(err)
	}
	got, err := x.Rsh(NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat("1", 999)
	wantInt, err := ParseBinary(want)
	if err != nil {
		t.Fatal(err)
	}
	if got.Text() != wantInt.Text() {
		t.Errorf("(2^1000-1) >> 1 = %s, expected %s", got.TextBinary(), wantInt.TextBinary())
	}
}

func TestLshRshRoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "12345", "-12345", "123456789012345678901234567890"}
	for _, v := range values {
		x, _ := ParseDecimal(v)
		shifted, err := x.Lsh(NewInt(37))
		if err != nil {
			t.Fatal(err)
		}
		back, err := shifted.Rsh(NewInt(37))
		if err != nil {
			t.Fatal(err)
		}
		if back.Text() != v {
			t.Errorf("(%s << 37) >> 37 = %s, expected %s", v, back.Text(), v)
		}
	}
}

func TestShiftNegativeCount(t *testing.T) {
	x := NewInt(5)
	if _, err := x.Lsh(NewInt(-1)); err != ErrNegativeShift {
		t.Errorf("Lsh with negative count: got %v, expected ErrNegativeShift", err)
	}
	if _, err := x.Rsh(NewInt(-1)); err != ErrNegativeShift {
		t.Errorf("Rsh with negative count: got %v, expected ErrNegativeShift", err)
	}
}

func TestShiftOverflow(t *testing.T) {
	x := NewInt(5)
	huge, _ := ParseDecimal("99999999999999999999999999999999999999999999")
	if _, err := x.Lsh(huge); err != ErrShiftOverflow {
		t.Errorf("Lsh with huge count: got %v, expected ErrShiftOverflow", err)
	}
}

func TestRshOverflowSaturates(t *testing.T) {
	huge, _ := ParseDecimal("99999999999999999999999999999999999999999999")

	got, err := NewInt(5).Rsh(huge)
	if err != nil {
		t.Fatalf("Rsh with huge count: got error %v, expected saturation", err)
	}
	if got.Text() != "0" {
		t.Errorf("5 >> huge = %s, expected 0", got.Text())
	}

	got, err = NewInt(-5).Rsh(huge)
	if err != nil {
		t.Fatalf("Rsh with huge count: got error %v, expected saturation", err)
	}
	if got.Text() != "-1" {
		t.Errorf("-5 >> huge = %s, expected -1", got.Text())
	}
}
