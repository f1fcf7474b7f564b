package cardgen

import (
	"errors"
	"fmt"
	"strings"
)

// Grouping selects how a card number is split into space-separated groups.
type Grouping int

const (
	// GroupFours splits the number into runs of 4 digits; the last run may be shorter.
	GroupFours Grouping = iota
	// GroupFourSixRest splits the number as 4-6-remainder (Amex, Diners Club).
	GroupFourSixRest
)

// CardType holds the issuing rules for one card network.
type CardType struct {
	Key       string
	Name      string
	Prefixes  [][]int
	Length    int
	CVVLength int
	Grouping  Grouping
}

var cardTypes = []CardType{
	{
		Key:       "visa",
		Name:      "Visa",
		Prefixes:  [][]int{{4}},
		Length:    16,
		CVVLength: 3,
	},
	{
		Key:       "mastercard",
		Name:      "Mastercard",
		Prefixes:  [][]int{{5, 1}, {5, 2}, {5, 3}, {5, 4}, {5, 5}},
		Length:    16,
		CVVLength: 3,
	},
	{
		Key:       "amex",
		Name:      "American Express",
		Prefixes:  [][]int{{3, 4}, {3, 7}},
		Length:    15,
		CVVLength: 4,
		Grouping:  GroupFourSixRest,
	},
	{
		Key:       "discover",
		Name:      "Discover",
		Prefixes:  [][]int{{6, 0, 1, 1}},
		Length:    16,
		CVVLength: 3,
	},
	{
		Key:       "jcb",
		Name:      "JCB",
		Prefixes:  [][]int{{3, 5, 2, 8}, {3, 5, 2, 9}},
		Length:    16,
		CVVLength: 3,
	},
	{
		Key:       "diners",
		Name:      "Diners Club",
		Prefixes:  [][]int{{3, 6}, {3, 8}},
		Length:    14,
		CVVLength: 3,
		Grouping:  GroupFourSixRest,
	},
}

var cardTypeIndex = func() map[string]int {
	m := make(map[string]int, len(cardTypes))
	for i, ct := range cardTypes {
		m[ct.Key] = i
	}
	return m
}()

var ErrUnknownCardType = errors.New("unknown card type")

// UnknownCardTypeError is returned by Resolve for a key that names no supported type.
type UnknownCardTypeError struct {
	Key   string
	Valid []string
}

func (e *UnknownCardTypeError) Error() string {
	return fmt.Sprintf("unknown card type: %s. Valid types: %s", e.Key, strings.Join(e.Valid, ", "))
}

func (e *UnknownCardTypeError) Is(target error) bool {
	return target == ErrUnknownCardType
}

// Types returns the supported card types in listing order.
func Types() []CardType {
	out := make([]CardType, len(cardTypes))
	copy(out, cardTypes)
	return out
}

// Keys returns the supported card type keys in listing order.
func Keys() []string {
	keys := make([]string, len(cardTypes))
	for i, ct := range cardTypes {
		keys[i] = ct.Key
	}
	return keys
}

// Resolve looks up key case-insensitively. An empty key picks one of the supported
// types uniformly at random using rnd.
func Resolve(key string, rnd Rand) (CardType, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return cardTypes[rnd.Intn(len(cardTypes))], nil
	}
	i, ok := cardTypeIndex[k]
	if !ok {
		return CardType{}, &UnknownCardTypeError{Key: key, Valid: Keys()}
	}
	return cardTypes[i], nil
}

// Prefix returns a copy of the i-th prefix candidate.
func (ct CardType) Prefix(i int) []int {
	p := make([]int, len(ct.Prefixes[i]))
	copy(p, ct.Prefixes[i])
	return p
}

// Format groups the digits of number with single spaces per the type's convention.
func (ct CardType) Format(number string) string {
	if ct.Grouping == GroupFourSixRest && len(number) > 10 {
		return number[:4] + " " + number[4:10] + " " + number[10:]
	}

	var sb strings.Builder
	sb.Grow(len(number) + len(number)/4)
	for i := 0; i < len(number); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		end := i + 4
		if end > len(number) {
			end = len(number)
		}
		sb.WriteString(number[i:end])
	}
	return sb.String()
}

// Identify returns the card type whose length and one of whose prefixes match
// number. Spaces and hyphens are ignored.
func Identify(number string) (CardType, bool) {
	n := NormalizePAN(number)
	if !IsDigits(n) {
		return CardType{}, false
	}
	for _, ct := range cardTypes {
		if len(n) != ct.Length {
			continue
		}
		for _, p := range ct.Prefixes {
			if strings.HasPrefix(n, JoinDigits(p)) {
				return ct, true
			}
		}
	}
	return CardType{}, false
}
