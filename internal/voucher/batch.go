package voucher

import (
	"errors"
	"time"
)

// maxCodeAttempts bounds regeneration when a generated code collides with one
// already issued.
const maxCodeAttempts = 10

var ErrCodeExhausted = errors.New("could not generate a unique voucher code")

// Issued is one voucher produced by a batch.
type Issued struct {
	Code    string
	Comment string
}

// IssueBatch generates count codes of one type. The batch comment is computed
// once, before the first code, so every voucher of the call carries the same
// tag and the batch can be filtered and printed as a group later. taken
// reports whether a code is already in use elsewhere; duplicates inside the
// batch itself are regenerated without consulting it.
func IssueBatch(typ Type, count int, now time.Time, taken func(code string) (bool, error)) ([]Issued, error) {
	comment := BatchComment(typ.Prefix, now)

	seen := make(map[string]bool, count)
	out := make([]Issued, 0, count)
	for i := 0; i < count; i++ {
		code, err := nextCode(typ.Prefix, seen, taken)
		if err != nil {
			return nil, err
		}
		seen[code] = true
		out = append(out, Issued{Code: code, Comment: comment})
	}
	return out, nil
}

func nextCode(prefix string, seen map[string]bool, taken func(string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := GenerateCode(prefix)
		if err != nil {
			return "", err
		}
		if seen[code] {
			continue
		}
		used, err := taken(code)
		if err != nil {
			return "", err
		}
		if used {
			continue
		}
		return code, nil
	}
	return "", ErrCodeExhausted
}
