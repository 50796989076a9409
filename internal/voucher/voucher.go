// Package voucher holds the pure pieces of the voucher domain: the prefix
// catalog, code generation and the batch comment tag. Nothing in here touches
// the database.
package voucher

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// CodeLength is the fixed length of every voucher code.
const CodeLength = 5

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Type describes one entry of the voucher catalog.
type Type struct {
	Prefix          string `json:"prefix"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int    `json:"price"`
}

// Types is the default voucher catalog. Prices are deployment defaults, not
// invariants.
var Types = []Type{
	{Prefix: "1j", Name: "1 Jam", DurationMinutes: 60, Price: 5000},
	{Prefix: "3j", Name: "3 Jam", DurationMinutes: 180, Price: 12000},
	{Prefix: "6j", Name: "6 Jam", DurationMinutes: 360, Price: 20000},
	{Prefix: "1h", Name: "1 Hari", DurationMinutes: 1440, Price: 35000},
	{Prefix: "1m", Name: "1 Minggu", DurationMinutes: 10080, Price: 150000},
}

// TypeByPrefix looks up a catalog entry by its prefix id.
func TypeByPrefix(prefix string) (Type, bool) {
	for _, t := range Types {
		if strings.EqualFold(t.Prefix, prefix) {
			return t, true
		}
	}
	return Type{}, false
}

// GenerateCode produces a voucher code of exactly CodeLength characters: the
// upper-cased prefix followed by random characters drawn uniformly from A-Z0-9.
// Uniqueness against already issued codes is the caller's responsibility.
func GenerateCode(prefix string) (string, error) {
	prefix = strings.ToUpper(prefix)
	if len(prefix) == 0 || len(prefix) > 2 {
		return "", fmt.Errorf("invalid prefix %q: must be 1-2 characters", prefix)
	}
	for _, r := range prefix {
		if !strings.ContainsRune(codeCharset, r) {
			return "", fmt.Errorf("invalid prefix %q: must be alphanumeric", prefix)
		}
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	for sb.Len() < CodeLength {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			return "", fmt.Errorf("generate random character: %w", err)
		}
		sb.WriteByte(codeCharset[n.Int64()])
	}
	return sb.String(), nil
}

// ValidCode reports whether code has the shape of an issued voucher code:
// exactly five uppercase alphanumeric characters.
func ValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if !strings.ContainsRune(codeCharset, r) {
			return false
		}
	}
	return true
}

// BatchComment builds the tag shared by all vouchers of one bulk-create call:
// "{prefix}_{DD}_{MM}_{YYYY}_{HH}:{MM}" in the local time of the issuing
// process. Callers compute it once per batch, never per voucher.
func BatchComment(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%02d_%02d_%04d_%02d:%02d",
		prefix, t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute())
}
