//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package bigint implements arbitrary-precision signed integer
// arithmetic on top of a sign-magnitude digit store. Values are
// immutable: every operation returns a freshly normalized Int and
// never mutates its operands.
package bigint

// limbBits is the number of bits used per limb, leaving two bits of
// headroom over the native signed word so that transient additive and
// multiplicative computations can carry before normalization.
const limbBits = 62

// limbBase is B, the radix of the limb store: 2^limbBits.
const limbBase int64 = 1 << limbBits

// halfBits is the width of the half-limb split used by the
// multiplicative primitive.
const halfBits = 31

// halfMask selects the low halfBits bits of a limb.
const halfMask int64 = (1 << halfBits) - 1

// Int is an arbitrary-precision signed integer in sign-magnitude
// form: limbs holds length digits, least-significant first, each in
// [0, limbBase); sign is -1, 0 or +1; zero is always represented with
// sign 0 and no limbs.
type Int struct {
	limbs  []int64
	sign   int8
	length int
}

// Zero is the canonical representation of 0.
var Zero = &Int{}

// NewInt returns the Int value of the native integer x.
func NewInt(x int64) *Int {
	if x == 0 {
		return &Int{}
	}
	sign := int8(1)
	umag := uint64(x)
	if x < 0 {
		sign = -1
		// Negating through uint64 avoids overflow for x ==
		// math.MinInt64, whose magnitude has no int64 representation.
		umag = -uint64(x)
	}
	var limbs []int64
	for umag != 0 {
		limbs = append(limbs, int64(umag&uint64(limbBase-1)))
		umag >>= limbBits
	}
	return &Int{limbs: limbs, sign: sign, length: len(limbs)}
}

// Sign returns -1, 0 or +1 depending on whether x is negative, zero
// or positive.
func (x *Int) Sign() int {
	return int(x.sign)
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.sign == 0
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign >= 0 {
		return x
	}
	return &Int{limbs: x.limbs, sign: 1, length: x.length}
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.sign == 0 {
		return x
	}
	return &Int{limbs: x.limbs, sign: -x.sign, length: x.length}
}

// cloneBuf makes a defensive copy of x's limbs, sized with extra
// headroom for in-place normalization by the caller.
func (x *Int) cloneBuf(headroom int) []int64 {
	buf := make([]int64, x.length+headroom)
	copy(buf, x.limbs)
	return buf
}

// reduce normalizes a candidate limb buffer into a canonical Int.
//
// mag must have at least length+2 elements: indices [0,length) (and
// length, length+1) form the working headroom that absorbs carries
// produced by addsub and mul. The input contract mirrors the
// reference algorithm's "one spare zero limb at the top"; the extra
// second slot is a safety margin so that a carry chain reaching the
// very last populated limb never indexes past the end of the slice.
func reduce(mag []int64, length int, sign int8) *Int {
	if length == 0 {
		return &Int{}
	}
	end := length
	for end > 0 && mag[end] == 0 {
		end--
	}
	if mag[end] < 0 {
		for i := 0; i <= end; i++ {
			mag[i] = -mag[i]
		}
		sign = -sign
	}
	for pass := 0; pass < 2; pass++ {
		for j := 0; j <= end; j++ {
			if mag[j] < 0 {
				mag[j+1]--
				mag[j] += limbBase
			} else if mag[j]&limbBase != 0 {
				mag[j+1]++
				mag[j] ^= limbBase
			}
		}
	}
	end++
	for end > 0 && mag[end] == 0 {
		end--
	}
	if end == 0 && mag[end] == 0 {
		return &Int{}
	}
	return &Int{limbs: mag[:end+1], sign: sign, length: end + 1}
}
