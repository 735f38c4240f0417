package sign

import (
	"bytes"
	"fmt"
)

var _ Curve = (*MockCurve)(nil)

// MockCurve is a Curve for tests. It produces predictable signatures:
// R is the digest itself and S carries the curve's ID, so Recover returns
// the ID as the "public key" whenever R matches the digest.
type MockCurve struct {
	id []byte
}

// NewMockCurve creates a MockCurve whose recovered key is id. The ID is
// truncated to 32 bytes.
func NewMockCurve(id string) *MockCurve {
	b := []byte(id)
	if len(b) > 32 {
		b = b[:32]
	}
	return &MockCurve{id: b}
}

func (m *MockCurve) Sign(digest, privateKey []byte) (Signature, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidDigest, len(digest), DigestLength)
	}
	if len(privateKey) != PrivateKeyLength || bytes.Equal(privateKey, make([]byte, PrivateKeyLength)) {
		return nil, fmt.Errorf("%w: mock rejects zero or short keys", ErrInvalidPrivateKey)
	}
	return NewSignature(0, digest, m.id)
}

func (m *MockCurve) Recover(digest []byte, sig Signature) ([]byte, error) {
	if err := sig.validate(); err != nil {
		return nil, err
	}
	if !bytes.Equal(sig.R(), digest) {
		return nil, fmt.Errorf("%w: digest mismatch", ErrInvalidSignature)
	}
	return bytes.TrimLeft(sig.S(), "\x00"), nil
}
