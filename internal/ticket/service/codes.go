package service

import (
	"crypto/rand"

	dErrors "convene/pkg/domain-errors"
)

// codeAlphabet omits 0/O and 1/I so printed codes survive retyping.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 12

// newCode draws a ticket code from crypto/rand.
func newCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "generate ticket code")
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
