package auth

import "golang.org/x/crypto/bcrypt"

// PasswordService hashes and verifies staff passwords.
type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// BcryptService implements PasswordService with bcrypt.
type BcryptService struct {
	cost int
}

// NewBcryptService creates a bcrypt password service. A cost of 0 selects
// the bcrypt default.
func NewBcryptService(cost int) *BcryptService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

func (s *BcryptService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *BcryptService) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
