// SPDX-License-Identifier: MIT

package ball

import (
	"fmt"
	"strings"
)

// unknownLiteral is how Entire() is written and read back.
const unknownLiteral = "unknown"

// String renders the ball as "[mid +/- rad]" with 20 significant digits.
func (b Ball) String() string { return b.Text(20) }

// Text renders the ball as "[mid +/- rad]" with the given number of digits.
// Exact balls are rendered without the radius part.
func (b Ball) Text(digits int) string {
	if !b.IsFinite() {
		return unknownLiteral
	}
	mid := b.Mid(uint(digits)*4 + 16)
	if b.IsExact() {
		return mid.Text('g', digits)
	}
	return fmt.Sprintf("[%s +/- %s]", mid.Text('g', digits), b.Rad(64).Text('e', 3))
}

// Parse reads a ball literal at prec bits. Accepted forms:
//
//	"1.25"                exact decimal, rounded outward
//	"1.25 +/- 1e-20"      midpoint and radius (brackets optional)
//	"[-0.5, 0.75]"        explicit endpoints
//	"unknown" or "?"      Entire()
func Parse(s string, prec uint) (Ball, error) {
	s = strings.TrimSpace(s)
	if s == unknownLiteral || s == "?" {
		return Entire(), nil
	}
	bracketed := strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
	if bracketed {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	if midStr, radStr, ok := strings.Cut(s, "+/-"); ok {
		mid, err := parseOutward(strings.TrimSpace(midStr), prec)
		if err != nil {
			return Ball{}, err
		}
		rad, err := parseOutward(strings.TrimSpace(radStr), prec)
		if err != nil {
			return Ball{}, err
		}
		if rad.IsNegative() && !rad.ContainsZero() {
			return Ball{}, fmt.Errorf("%q: %w", radStr, ErrNegativeRadius)
		}
		return AddError(mid, rad), nil
	}

	if bracketed {
		loStr, hiStr, ok := strings.Cut(s, ",")
		if !ok {
			return Ball{}, fmt.Errorf("%q: %w", s, ErrSyntax)
		}
		lo, err := parseOutward(strings.TrimSpace(loStr), prec)
		if err != nil {
			return Ball{}, err
		}
		hi, err := parseOutward(strings.TrimSpace(hiStr), prec)
		if err != nil {
			return Ball{}, err
		}
		if lo.lo.Cmp(hi.hi) > 0 {
			return Ball{}, fmt.Errorf("%q: lo > hi: %w", s, ErrSyntax)
		}
		return Union(lo, hi), nil
	}

	return parseOutward(s, prec)
}

// parseOutward encloses the decimal s, rounding each end away from it.
func parseOutward(s string, prec uint) (Ball, error) {
	lo, ok := down(prec).SetString(s)
	if !ok {
		return Ball{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	hi, _ := up(prec).SetString(s)
	if lo.IsInf() || hi.IsInf() {
		return Ball{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	return Ball{lo: lo, hi: hi}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Ball) MarshalText() ([]byte, error) {
	if !b.IsFinite() {
		return []byte(unknownLiteral), nil
	}
	lo, hi := b.bounds()
	return []byte(fmt.Sprintf("[%s, %s]", lo.Text('p', 0), hi.Text('p', 0))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. MarshalText writes the
// endpoints as exact hexadecimal mantissas, so a round trip is exact.
func (b *Ball) UnmarshalText(text []byte) error {
	v, err := Parse(string(text), textPrec(string(text)))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// textPrec picks a precision large enough to hold every digit of s.
func textPrec(s string) uint {
	p := uint(len(s)) * 4
	if p < exactPrec {
		p = exactPrec
	}
	return p
}

var _ fmt.Stringer = Ball{}
