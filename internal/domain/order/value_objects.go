package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
)

// OrderID is the fixed-width human-readable identifier: a 5-digit sequential
// prefix followed by a 7-character random suffix. Performance orders use
// upper-case letters for the suffix, accommodation orders use digits.
type OrderID string

const (
	prefixWidth = 5
	suffixWidth = 7
	prefixMod   = 100000

	letterSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitSuffixChars  = "0123456789"
)

var ErrInvalidOrderID = errors.New("invalid order id")

// NewOrderID builds an identifier from an already-allocated sequence value.
// The prefix wraps modulo 100000 to stay inside the fixed width.
func NewOrderID(kind Kind, seq int64, suffix string) (OrderID, error) {
	if !kind.IsValid() {
		return "", ErrInvalidOrderID
	}
	if len(suffix) != suffixWidth {
		return "", ErrInvalidOrderID
	}
	prefix := seq % prefixMod
	if prefix < 0 {
		return "", ErrInvalidOrderID
	}
	id := OrderID(fmt.Sprintf("%05d%s", prefix, suffix))
	if !id.MatchesKind(kind) {
		return "", ErrInvalidOrderID
	}
	return id, nil
}

// RandomSuffix draws 7 characters from the kind's alphabet using crypto/rand.
func RandomSuffix(kind Kind) (string, error) {
	chars := letterSuffixChars
	if kind == KindAccommodation {
		chars = digitSuffixChars
	}

	buf := make([]byte, suffixWidth)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = chars[int(b)%len(chars)]
	}
	return string(buf), nil
}

func (id OrderID) String() string {
	return string(id)
}

// Prefix returns the numeric value of the first 5 characters, or -1 for a
// malformed identifier.
func (id OrderID) Prefix() int {
	if len(id) < prefixWidth {
		return -1
	}
	n, err := strconv.Atoi(string(id[:prefixWidth]))
	if err != nil {
		return -1
	}
	return n
}

// MatchesKind reports whether the identifier has the documented shape for the
// given order kind.
func (id OrderID) MatchesKind(kind Kind) bool {
	if len(id) != prefixWidth+suffixWidth {
		return false
	}
	for _, c := range id[:prefixWidth] {
		if c < '0' || c > '9' {
			return false
		}
	}
	for _, c := range id[prefixWidth:] {
		switch kind {
		case KindPerformance:
			if c < 'A' || c > 'Z' {
				return false
			}
		case KindAccommodation:
			if c < '0' || c > '9' {
				return false
			}
		default:
			return false
		}
	}
	return true
}
