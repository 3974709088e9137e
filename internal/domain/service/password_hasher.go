package service

// PasswordHasher abstracts the password hashing scheme used for
// account credentials.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns an error when the password does
	// not meet the configured strength requirements.
	ValidatePasswordStrength(password string) error
}
