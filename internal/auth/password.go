package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor for password hashing. 10 keeps hashing slow
// enough to resist offline brute force without stalling signups.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of the plaintext.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored digest. Any
// mismatch, including a malformed digest, reports false rather than an
// error. The comparison is constant time with respect to the digest.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
