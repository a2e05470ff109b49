package model

// PasswordHasher performs one-way password hashing and verification. The
// algorithm is a deployment choice; the core only depends on this contract.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when the cleartext password matches the hash.
	Compare(password, hash string) error
}
