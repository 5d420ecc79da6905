package generator

import (
	"crypto/rand"
	"math/big"
)

// keyCharset deliberately leaves out characters that read ambiguously
// (0/O, 1/l/I) since keys get pasted around by hand.
const keyCharset = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// KeyCode generates an opaque random key of the given length.
func KeyCode(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(keyCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = keyCharset[n.Int64()]
	}
	return string(code), nil
}
