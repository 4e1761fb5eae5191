//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import "math"

// divmodMagnitude divides the magnitudes aAbs by bAbs (both
// non-negative, bAbs non-zero), returning the non-negative truncating
// quotient and remainder such that aAbs = q*bAbs + r, 0 <= r < bAbs.
//
// It implements long division with a floating-point estimate of each
// quotient digit (from the top one or two limbs of the divisor and
// of the shrinking remainder), followed by a correction loop that
// backs the estimate off by one, or borrows a full limbBase-1 digit,
// whenever it overshoots.
func divmodMagnitude(aAbs, bAbs *Int) (*Int, *Int) {
	if aAbs.length < bAbs.length {
		return &Int{}, aAbs
	}

	qLen := aAbs.length - bAbs.length + 1
	q := make([]int64, qLen+2)
	one := NewInt(1)

	const bFloat = float64(limbBase)
	var br float64
	if bAbs.length == 1 {
		br = float64(bAbs.limbs[0])
	} else {
		br = float64(bAbs.limbs[bAbs.length-1]) + float64(bAbs.limbs[bAbs.length-2])/bFloat
	}

	r := aAbs
	s := aAbs.length
	var tmp *Int

outer:
	for s >= bAbs.length {
		if s == bAbs.length {
			tmp = r.Sub(bAbs)
			if tmp.sign == -1 {
				break outer
			}
		}

		j := r.length - bAbs.length
		ar := float64(r.limbs[s-1])
		if s > 1 {
			ar += float64(r.limbs[s-2]) / bFloat
		}
		qr := ar / br
		if qr < 1.0 {
			if j == 0 {
				break outer
			}
			qr *= bFloat
			j--
			if qr < 1.0 {
				qr = 1.0
			}
		}

		k := int64(math.Floor(qr))
		kBig := NewInt(k)
		q[j] += k

		for {
			bb := kBig.Mul(bAbs)
			if bb.sign != 0 {
				bb.sign = 1
			}
			bb = prependZeroLimbs(bb, j)
			tmp = r.Sub(bb)
			s = tmp.length
			if tmp.sign == -1 {
				kBig = kBig.Sub(one)
				q[j]--
				if q[j] == 0 {
					kBig = &Int{limbs: []int64{limbBase - 1}, sign: 1, length: 1}
					q[j-1] = limbBase - 1
					j--
				}
				continue
			}
			r = tmp
			break
		}
	}

	qEnd := qLen
	for qEnd > 0 && q[qEnd-1] == 0 {
		qEnd--
	}
	if qEnd == 0 {
		return &Int{}, r
	}
	return &Int{limbs: q[:qEnd], sign: 1, length: qEnd}, r
}

// QuoRem returns the quotient and remainder of x divided by y under
// floored-division semantics: q = floor(x/y), r = x - q*y. The
// remainder is zero or takes the sign of y, and 0 <= |r| < |y|.
//
// Returns ErrDivideByZero if y is zero.
func (x *Int) QuoRem(y *Int) (*Int, *Int, error) {
	if y.sign == 0 {
		return nil, nil, ErrDivideByZero
	}

	qMag, rMag := divmodMagnitude(x.Abs(), y.Abs())

	if rMag.sign == 0 {
		if qMag.length == 0 {
			return &Int{}, &Int{}, nil
		}
		return &Int{limbs: qMag.limbs, sign: x.sign * y.sign, length: qMag.length}, &Int{}, nil
	}

	if x.sign == y.sign {
		var qSign int8
		if qMag.length > 0 {
			qSign = x.sign * y.sign
		}
		q := &Int{}
		if qMag.length > 0 {
			q = &Int{limbs: qMag.limbs, sign: qSign, length: qMag.length}
		}
		r := &Int{limbs: rMag.limbs, sign: y.sign, length: rMag.length}
		return q, r, nil
	}

	// Signs disagree: the truncating quotient/remainder from the
	// magnitude division must be adjusted down by one divisor unit
	// to land on the floor of x/y.
	newQMag := qMag.Add(one1)
	q := &Int{limbs: newQMag.limbs, sign: -1, length: newQMag.length}
	signedRMag := &Int{limbs: rMag.limbs, sign: y.sign, length: rMag.length}
	r := y.Sub(signedRMag)
	return q, r, nil
}

var one1 = NewInt(1)

// Mod returns x mod y for a strictly positive modulus y, satisfying
// 0 <= result < y.
//
// Returns ErrDivideByZero if y is zero and ErrNegativeModulus if y is
// negative; negative moduli are not supported.
func (x *Int) Mod(y *Int) (*Int, error) {
	if y.sign == 0 {
		return nil, ErrDivideByZero
	}
	if y.sign < 0 {
		return nil, ErrNegativeModulus
	}
	_, r, err := x.QuoRem(y)
	return r, err
}
