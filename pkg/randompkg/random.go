// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Int64Between generates a random integer between min and max.
func Int64Between(min, max int64) int64 {
	return min + Intn(int(max-min))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random owner name.
func Owner() string {
	return String(6)
}

// Email generates a random email.
func Email() string {
	return fmt.Sprintf("%s@%s.com", String(6), String(4))
}

// Cents generates a random signed amount of money in cents.
func Cents() int64 {
	return Int64Between(-100_000, 100_000)
}

// Category generates a random transaction category label.
func Category() string {
	categories := []string{"tithe", "offering", "building", "missions", "events"}
	return categories[Intn(len(categories))]
}

// DateBetween generates a random instant between from and to.
func DateBetween(from, to time.Time) time.Time {
	span := to.Sub(from)
	return from.Add(time.Duration(Int64Between(0, int64(span))))
}
