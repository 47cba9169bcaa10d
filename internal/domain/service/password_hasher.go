package service

// PasswordHasher abstracts password hashing so the application layer does
// not depend on a specific algorithm.
type PasswordHasher interface {
	// Hash returns the hash of a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	Compare(hashedPassword, password string) error
}
