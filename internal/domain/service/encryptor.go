// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// Encryptor defines the interface for protecting credential material at rest.
// This abstracts the underlying AEAD scheme and key handling, keeping the domain pure.
// Plaintext passed in is never retained by implementations beyond the call.
type Encryptor interface {
	// EncryptString seals a plaintext secret into its versioned storage form.
	EncryptString(plaintext string) (string, error)

	// DecryptString opens a stored secret back into plaintext. It fails closed:
	// any integrity or format failure returns an error and no partial output.
	DecryptString(stored string) (string, error)

	// KeyVersion returns the version of the key used for new encryptions.
	KeyVersion() int
}

// IdentifierHasher derives a stable, non-reversible fingerprint from an
// account identifier so connections can be correlated without storing the
// identifier itself.
type IdentifierHasher interface {
	HashIdentifier(identifier string) string
}
