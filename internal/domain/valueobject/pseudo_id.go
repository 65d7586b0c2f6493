package valueobject

import (
	"fmt"
	"math/rand"
	"strings"
)

// PseudoID is an immutable value object holding a synthesized national-style
// identifier in the form ddd.ddd.ddd-dd. It is a pure function of the seed it
// was derived from and is never persisted as a first-class record.
type PseudoID struct {
	value string
}

// SynthesizePseudoID deterministically derives a pseudo identifier from the
// given seed, typically a user ID. A fresh generator is seeded per call, so
// the same seed always yields the same identifier and concurrent callers
// never share generator state.
func SynthesizePseudoID(seed int64) PseudoID {
	rng := rand.New(rand.NewSource(seed))

	var digits [11]int
	for i := 0; i < 9; i++ {
		digits[i] = rng.Intn(10)
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	first := sum * 10 % 11
	if first == 10 {
		first = 0
	}
	digits[9] = first

	sum = first * 2
	for i := 0; i < 9; i++ {
		sum += digits[i] * (11 - i)
	}
	second := sum * 10 % 11
	if second == 10 {
		second = 0
	}
	digits[10] = second

	var b strings.Builder
	for i, d := range digits {
		if i == 3 || i == 6 {
			b.WriteByte('.')
		}
		if i == 9 {
			b.WriteByte('-')
		}
		fmt.Fprintf(&b, "%d", d)
	}

	return PseudoID{value: b.String()}
}

// String returns the formatted identifier.
func (p PseudoID) String() string {
	return p.value
}

// LastDigit returns the numeric value of the final check digit.
func (p PseudoID) LastDigit() int {
	return int(p.value[len(p.value)-1] - '0')
}

// Digits returns the 11 digits without punctuation.
func (p PseudoID) Digits() string {
	var b strings.Builder
	for _, r := range p.value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsZero returns true if the PseudoID has not been set.
func (p PseudoID) IsZero() bool {
	return p.value == ""
}
