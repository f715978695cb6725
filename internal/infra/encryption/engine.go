package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"vaultd/config"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/service"
)

// keySize is the AES-256 key length in bytes.
const keySize = 32

// gcmEngine is a concrete implementation of the Encryptor interface using
// AES-256-GCM. The master key lives only in this struct and never appears in
// logs, errors or API responses.
type gcmEngine struct {
	aead       cipher.AEAD
	keyVersion int
}

// New is the constructor for the encryption engine. The master key comes from
// configuration as 64 hex characters; anything else fails startup rather than
// limping along with a weak key.
func New(cfg *config.Config) (service.Encryptor, error) {
	if cfg.Encryption == nil || cfg.Encryption.MasterKey == "" {
		return nil, domainerrors.ErrMasterKeyInvalid.WrapMessage("master key is not configured")
	}

	key, err := hex.DecodeString(cfg.Encryption.MasterKey)
	if err != nil {
		return nil, domainerrors.ErrMasterKeyInvalid.WrapMessage("master key is not valid hex")
	}
	if len(key) != keySize {
		return nil, domainerrors.ErrMasterKeyInvalid.WrapMessage("master key must decode to 32 bytes")
	}

	return newWithKey(key, cfg.Encryption.KeyVersion)
}

func newWithKey(key []byte, keyVersion int) (service.Encryptor, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, domainerrors.ErrMasterKeyInvalid.WrapMessage(err.Error())
	}

	// The storage format fixes the IV at 16 bytes, not GCM's default 12.
	aead, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, domainerrors.ErrMasterKeyInvalid.WrapMessage(err.Error())
	}

	if keyVersion < 1 {
		keyVersion = 1
	}

	return &gcmEngine{aead: aead, keyVersion: keyVersion}, nil
}

// EncryptString seals a plaintext secret into its versioned storage form.
// A fresh random IV is drawn per call, so encrypting the same plaintext twice
// yields different records.
func (e *gcmEngine) EncryptString(plaintext string) (string, error) {
	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("drawing iv failed")
	}

	// Seal appends the auth tag to the ciphertext; the storage format keeps
	// them as separate segments.
	sealed := e.aead.Seal(nil, iv, []byte(plaintext), nil)
	ctLen := len(sealed) - tagSize

	secret := &EncryptedSecret{
		KeyVersion: e.keyVersion,
		IV:         iv,
		AuthTag:    sealed[ctLen:],
		Ciphertext: sealed[:ctLen],
	}

	return secret.String(), nil
}

// DecryptString opens a stored secret back into plaintext. Any tampering with
// IV, tag or ciphertext fails the tag check and returns ErrDecryptionFailed
// with no partial output.
func (e *gcmEngine) DecryptString(stored string) (string, error) {
	secret, err := ParseSecret(stored)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(secret.Ciphertext)+tagSize)
	sealed = append(sealed, secret.Ciphertext...)
	sealed = append(sealed, secret.AuthTag...)

	plaintext, err := e.aead.Open(nil, secret.IV, sealed, nil)
	if err != nil {
		return "", domainerrors.ErrDecryptionFailed.WrapMessage("authentication tag mismatch")
	}

	return string(plaintext), nil
}

// KeyVersion returns the version stamped onto new encryptions.
func (e *gcmEngine) KeyVersion() int {
	return e.keyVersion
}

// GenerateKey draws a fresh random master key and returns it hex-encoded.
// Intended for operators provisioning a new deployment.
func GenerateKey() (string, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// sha256Hasher fingerprints account identifiers with SHA-256.
type sha256Hasher struct{}

// NewIdentifierHasher is the constructor for the identifier hasher.
func NewIdentifierHasher() service.IdentifierHasher {
	return &sha256Hasher{}
}

// HashIdentifier returns the hex SHA-256 digest of an account identifier.
// The digest is stable per identifier so connections can be correlated
// without ever storing the identifier itself.
func (h *sha256Hasher) HashIdentifier(identifier string) string {
	sum := sha256.Sum256([]byte(identifier))
	return hex.EncodeToString(sum[:])
}
