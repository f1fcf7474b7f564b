package cardgen

import (
	"strings"
)

// CheckDigit returns the Luhn check digit for body, which must not include the check
// digit itself. Digits are walked from the right; the digit that will sit next to the
// check digit is doubled, then every second one after it.
func CheckDigit(body []int) int {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := body[i]
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return (10 - (sum % 10)) % 10
}

// ValidateLuhn reports whether text is a Luhn-valid number. Spaces and hyphens are
// ignored; anything else that is not a digit makes the number invalid, as does a
// number shorter than two digits.
func ValidateLuhn(text string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(text)
	if len(cleaned) < 2 || !IsDigits(cleaned) {
		return false
	}

	digits := ParseDigits(cleaned)
	last := len(digits) - 1
	return CheckDigit(digits[:last]) == digits[last]
}

// ParseDigits converts a string of ASCII digits into their integer values.
// The caller must have checked the input with IsDigits.
func ParseDigits(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i] - '0')
	}
	return out
}

// JoinDigits is the inverse of ParseDigits.
func JoinDigits(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = '0' + byte(d)
	}
	return string(b)
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MaskPAN keeps the first 6 and last 4 digits of a PAN, for logs.
func MaskPAN(pan string) string {
	cleaned := NormalizePAN(pan)
	n := len(cleaned)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + cleaned[n-4:]
	}
	return cleaned[:6] + strings.Repeat("*", n-10) + cleaned[n-4:]
}

// NormalizePAN removes spaces, tabs and hyphens.
func NormalizePAN(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, s)
}
