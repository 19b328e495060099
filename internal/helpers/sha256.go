package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// shortHashLength is the number of hex characters kept in source identifiers.
const shortHashLength = 8

// SHA256 returns the hex digest of input.
func SHA256(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])
}

// ShortSHA256 returns the leading hex characters of the digest, used to name
// inline sources.
func ShortSHA256(input string) string {
	return SHA256(input)[:shortHashLength]
}

// SHA256Reader hashes everything remaining in reader.
func SHA256Reader(reader io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
