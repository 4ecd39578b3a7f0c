package math

import (
	"fmt"
	"math"
	"math/big"
	"sync"
)

// DecimalConfig defines fixed-point precision
type DecimalConfig struct {
	DecimalPrecision int   // Number of decimal places
	Scale            int64 // 10^DecimalPrecision
}

// AmountConfig is the single value unit of the ledger: 6 decimals.
var AmountConfig = DecimalConfig{DecimalPrecision: 6, Scale: 1_000_000}

// Int128 is a pooled big.Int for intermediate calculations
var int128Pool = &sync.Pool{
	New: func() interface{} {
		return new(big.Int)
	},
}

func getInt128() *big.Int {
	return int128Pool.Get().(*big.Int)
}

func putInt128(v *big.Int) {
	v.SetInt64(0) // Clear before returning to pool
	int128Pool.Put(v)
}

// MultiplyInt128 performs a * b using int128 to prevent overflow
func MultiplyInt128(a, b int64) *big.Int {
	result := getInt128()
	result.Mul(big.NewInt(a), big.NewInt(b))
	return result
}

// DivideInt128 performs numerator / denominator with rounding
func DivideInt128(numerator *big.Int, denominator int64, roundingMode RoundingMode) int64 {
	denom := big.NewInt(denominator)
	quotient := getInt128()
	remainder := getInt128()

	quotient.DivMod(numerator, denom, remainder)

	result := quotient.Int64()

	if roundingMode == RoundUp {
		if remainder.Sign() != 0 {
			result++
		}
	} else if roundingMode == RoundHalfEven {
		// Banker's rounding: if remainder == denominator/2, round to even
		half := big.NewInt(denominator / 2)
		cmp := remainder.Cmp(half)

		if cmp > 0 {
			result++
		} else if cmp == 0 && denominator%2 == 0 {
			if result%2 != 0 {
				result++
			}
		}
	}

	putInt128(quotient)
	putInt128(remainder)

	return result
}

type RoundingMode int

const (
	RoundDown RoundingMode = iota // Floor (default for interest accrual)
	RoundHalfEven
	RoundUp
)

// MulDiv computes a * b / denom through int128, truncating toward zero.
// All interest, fee and proportional-seize formulas route through this
// so intermediate products can never wrap.
func MulDiv(a, b, denom int64) int64 {
	if denom == 0 {
		return 0
	}
	product := MultiplyInt128(a, b)
	result := DivideInt128(product, denom, RoundDown)
	putInt128(product)
	return result
}

// MulDiv3 computes a * b * c / denom through int128, truncating.
func MulDiv3(a, b, c, denom int64) int64 {
	if denom == 0 {
		return 0
	}
	product := MultiplyInt128(a, b)
	product.Mul(product, big.NewInt(c))
	result := DivideInt128(product, denom, RoundDown)
	putInt128(product)
	return result
}

// CheckedAdd returns a + b or an error on int64 overflow. Balances are
// validated before subtraction, so additions are the only place wraparound
// could slip in.
func CheckedAdd(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, fmt.Errorf("int64 overflow: %d + %d", a, b)
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, fmt.Errorf("int64 underflow: %d + %d", a, b)
	}
	return a + b, nil
}

// CheckedSub returns a - b or an error when the result would be negative.
func CheckedSub(a, b int64) (int64, error) {
	if b > a {
		return 0, fmt.Errorf("negative result: %d - %d", a, b)
	}
	return a - b, nil
}
