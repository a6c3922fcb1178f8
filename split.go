package money

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/moneykit/money/fixed"
)

var (
	errNegativePercentage = errors.New("negative percentage")
	errInvalidParts       = errors.New("number of parts must be positive")
)

// Split allocates amount a into shares proportional to the given percentages.
// The shares are returned in the order of the percentages. If the percentages
// sum to less than 100, an additional share holding the unallocated remainder
// is appended. With the [Exact] backend the shares always sum to a.
//
// If round is false, every share is computed as a * p / 100 without rounding.
// If round is true, every share except the last is rounded with
// [Amount.RoundToCurr] and the last share, including the appended
// remainder, absorbs the rounding error:
//
//	USD 100.00 split [33.33 33.33 33.34] -> USD 33.33, USD 33.33, USD 33.34
//	USD 10.00 split [40] rounded         -> USD 4.00, USD 6.00
//
// See also method [Amount.SplitEven].
//
// Split returns an error if:
//   - any percentage is negative;
//   - the percentages sum to more than 100.
func (a Amount) Split(percentages []decimal.Decimal, round bool) ([]Amount, error) {
	ps := make([]fixed.Decimal, len(percentages))
	for i, p := range percentages {
		ps[i] = toFixed(p)
	}
	r, err := a.split(ps, round)
	if err != nil {
		return nil, fmt.Errorf("splitting %v by %v: %w", a, percentages, err)
	}
	return r, nil
}

func (a Amount) split(ps []fixed.Decimal, round bool) ([]Amount, error) {
	// Allocation
	var sum fixed.Decimal
	for _, p := range ps {
		if p.IsNeg() {
			return nil, errNegativePercentage
		}
		sum = sum.Add(p)
	}
	alloc := sum.Cmp(hundred)
	if alloc > 0 {
		return nil, ErrOverAllocation
	}

	res := make([]Amount, 0, len(ps)+1)
	total := a.Zero()
	for i, p := range ps {
		var (
			share Amount
			err   error
		)
		switch {
		case round && alloc == 0 && i == len(ps)-1:
			// Last share
			share, err = a.sub(total)
		default:
			share, err = a.percentage(p)
			if err == nil && round {
				share = share.RoundToCurr()
			}
		}
		if err != nil {
			return nil, err
		}
		total, err = total.add(share)
		if err != nil {
			return nil, err
		}
		res = append(res, share)
	}

	// Remainder
	if alloc < 0 {
		rem, err := a.sub(total)
		if err != nil {
			return nil, err
		}
		res = append(res, rem)
	}
	return res, nil
}

// SplitEven returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
// See also methods [Amount.Split] and [Amount.QuoRem].
//
// SplitEven returns an error if the number of parts is not a positive integer.
func (a Amount) SplitEven(parts int) ([]Amount, error) {
	r, err := a.splitEven(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) splitEven(parts int) ([]Amount, error) {
	// Parts
	if parts <= 0 {
		return nil, errInvalidParts
	}
	par := fixed.MustNew(int64(parts), 0)
	scale := a.Scale()

	// Quotient
	quo, err := a.backend().Quo(a.value, par, scale)
	if err != nil {
		return nil, err
	}
	q := a.derive(quo).Trunc(scale)

	// Remainder
	rem, err := q.mul(par)
	if err != nil {
		return nil, err
	}
	rem, err = a.sub(rem)
	if err != nil {
		return nil, err
	}
	rem = rem.Round(scale)
	ulp := rem.ULP()
	if rem.IsNeg() {
		ulp = ulp.Neg()
	}

	res := make([]Amount, parts)
	for i := 0; i < parts; i++ {
		res[i] = q
		// Remainder distribution
		if !rem.IsZero() {
			rem, err = rem.sub(ulp)
			if err != nil {
				return nil, err
			}
			rem = rem.Round(scale)
			res[i], err = res[i].add(ulp)
			if err != nil {
				return nil, err
			}
			res[i] = res[i].Round(scale)
		}
	}
	return res, nil
}
