package util

import (
	"math/rand"
	"time"
)

const digits = "0123456789"

// GenerateCode returns a numeric code of the given length.
func GenerateCode(length int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, length)
	for i := range code {
		code[i] = digits[r.Intn(len(digits))]
	}
	return string(code)
}
