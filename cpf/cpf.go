// Package cpf validates and formats Brazilian CPF numbers, the tax id
// collected on every event registration. All functions are pure and never
// panic on malformed input.
package cpf

import "strings"

// Strip returns only the decimal digits of raw.
func Strip(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether raw carries a well-formed CPF: exactly 11 digits
// after stripping punctuation, not a repeated-digit sequence, and with
// both check digits matching the registry checksum.
func Valid(raw string) bool {
	digits := Strip(raw)
	if len(digits) != 11 {
		return false
	}
	if allSame(digits) {
		return false
	}
	if checkDigit(digits[:9], 10) != int(digits[9]-'0') {
		return false
	}
	return checkDigit(digits[:10], 11) == int(digits[10]-'0')
}

// Format renders the digits of raw as XXX.XXX.XXX-XX. Input that does not
// strip to exactly 11 digits is returned stripped but otherwise untouched.
// No validation is performed.
func Format(raw string) string {
	digits := Strip(raw)
	if len(digits) != 11 {
		return digits
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// checkDigit computes one CPF verification digit: the digits are weighted
// from firstWeight down to 2, summed, and reduced mod 11; a remainder
// below 2 yields 0, anything else yields 11 minus the remainder.
func checkDigit(digits string, firstWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (firstWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
