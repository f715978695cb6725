// Package encryption implements the AEAD engine protecting credential
// material at rest, plus the versioned storage format secrets are stored in.
package encryption

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	domainerrors "vaultd/internal/domain/errors"
)

// ivSize and tagSize are fixed by the storage format. Every stored secret
// carries a fresh random IV and the full GCM authentication tag.
const (
	ivSize  = 16
	tagSize = 16
)

// EncryptedSecret is the parsed form of one stored secret. It is an opaque
// storage artifact: none of its fields reveal anything about the plaintext.
type EncryptedSecret struct {
	KeyVersion int
	IV         []byte
	AuthTag    []byte
	Ciphertext []byte
}

// String serializes the secret into its storage form,
// "version:iv:authTag:ciphertext" with hex-encoded segments.
func (s *EncryptedSecret) String() string {
	return fmt.Sprintf("%d:%s:%s:%s",
		s.KeyVersion,
		hex.EncodeToString(s.IV),
		hex.EncodeToString(s.AuthTag),
		hex.EncodeToString(s.Ciphertext),
	)
}

// ParseSecret parses the storage form back into its components. Anything that
// is not exactly four well-formed segments is rejected; a malformed record is
// treated as corrupt, not recoverable.
func ParseSecret(stored string) (*EncryptedSecret, error) {
	parts := strings.Split(stored, ":")
	if len(parts) != 4 {
		return nil, domainerrors.ErrSecretFormatInvalid.WrapMessage(
			fmt.Sprintf("expected 4 segments, got %d", len(parts)))
	}

	version, err := strconv.Atoi(parts[0])
	if err != nil || version < 1 {
		return nil, domainerrors.ErrSecretFormatInvalid.WrapMessage("invalid key version segment")
	}

	iv, err := hex.DecodeString(parts[1])
	if err != nil || len(iv) != ivSize {
		return nil, domainerrors.ErrSecretFormatInvalid.WrapMessage("invalid iv segment")
	}

	tag, err := hex.DecodeString(parts[2])
	if err != nil || len(tag) != tagSize {
		return nil, domainerrors.ErrSecretFormatInvalid.WrapMessage("invalid auth tag segment")
	}

	ct, err := hex.DecodeString(parts[3])
	if err != nil {
		return nil, domainerrors.ErrSecretFormatInvalid.WrapMessage("invalid ciphertext segment")
	}

	return &EncryptedSecret{
		KeyVersion: version,
		IV:         iv,
		AuthTag:    tag,
		Ciphertext: ct,
	}, nil
}
