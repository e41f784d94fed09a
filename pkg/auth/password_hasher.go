package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

// Hash хэширует пароль bcrypt'ом; соль генерируется заново на каждый вызов,
// поэтому одинаковые пароли дают разные хэши
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify сравнивает пароль с хэшем; на битом хэше просто возвращает false
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
