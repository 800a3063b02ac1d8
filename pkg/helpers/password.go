package helpers

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt with a fixed cost factor.
type Hasher struct {
	Cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{Cost: cost}
}

// Hash hashes the plain text password using bcrypt. The output embeds a
// random salt, so two calls never produce the same hash.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare verifies a plain password against a bcrypt hash. bcrypt's own
// comparison is constant-time with respect to the mismatch position.
func (h *Hasher) Compare(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
