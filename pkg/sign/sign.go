package sign

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// DigestLength is the size of every digest a Curve signs.
	DigestLength = 32
	// PrivateKeyLength is the size of a raw secp256k1 private key.
	PrivateKeyLength = 32
	// SignatureLength is the size of an R || S || V signature.
	SignatureLength = 65
	// LegacyRecoveryOffset is added to the recovery id to form the legacy v.
	LegacyRecoveryOffset = 27
)

var (
	ErrInvalidDigest     = errors.New("invalid digest length")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidPublicKey  = errors.New("invalid public key")
)

// Hasher produces the digest that is signed.
type Hasher interface {
	Hash(data []byte) []byte
}

// Curve is a recoverable ECDSA primitive. Implementations must not keep any
// state between calls so they can be shared by concurrent callers.
type Curve interface {
	// Sign signs a 32-byte digest with a raw 32-byte private key. The
	// returned signature carries the legacy v (recovery id + 27).
	Sign(digest, privateKey []byte) (Signature, error)
	// Recover returns the 65-byte uncompressed public key that produced sig
	// over digest. sig.V() must be 27 or 28.
	Recover(digest []byte, sig Signature) ([]byte, error)
}

// Backend names a Curve implementation.
type Backend string

const (
	BackendEthereum Backend = "ethereum"
	BackendDecred   Backend = "decred"
)

// NewCurve returns the Curve for backend.
func NewCurve(backend Backend) (Curve, error) {
	switch backend {
	case BackendEthereum, "":
		return EthereumCurve{}, nil
	case BackendDecred:
		return DecredCurve{}, nil
	default:
		return nil, fmt.Errorf("unsupported curve backend: %s", backend)
	}
}

// Signature is a recoverable signature laid out as R || S || V, with V in
// the legacy 27/28 form.
type Signature []byte

// NewSignature assembles a signature from a recovery id and the r and s
// scalars. r and s may be minimal encodings; they are left-padded to 32
// bytes.
func NewSignature(recoveryID byte, r, s []byte) (Signature, error) {
	if recoveryID > 1 {
		return nil, fmt.Errorf("%w: recovery id %d", ErrInvalidSignature, recoveryID)
	}
	if len(r) > 32 || len(s) > 32 {
		return nil, fmt.Errorf("%w: scalar longer than 32 bytes", ErrInvalidSignature)
	}
	sig := make(Signature, SignatureLength)
	copy(sig[32-len(r):32], r)
	copy(sig[64-len(s):64], s)
	sig[64] = recoveryID + LegacyRecoveryOffset
	return sig, nil
}

// R returns the 32-byte r scalar.
func (s Signature) R() []byte { return s[:32] }

// S returns the 32-byte s scalar.
func (s Signature) S() []byte { return s[32:64] }

// V returns the legacy recovery parameter (27 or 28).
func (s Signature) V() byte { return s[64] }

// RecoveryID returns v with the legacy offset removed.
func (s Signature) RecoveryID() byte {
	if s[64] >= LegacyRecoveryOffset {
		return s[64] - LegacyRecoveryOffset
	}
	return s[64]
}

func (s Signature) validate() error {
	if len(s) != SignatureLength {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidSignature, len(s), SignatureLength)
	}
	if v := s.V(); v != LegacyRecoveryOffset && v != LegacyRecoveryOffset+1 {
		return fmt.Errorf("%w: v %d", ErrInvalidSignature, v)
	}
	return nil
}

// MarshalJSON encodes the signature as a 0x-prefixed hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a 0x-prefixed hex string.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := hexutil.Decode(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

func (s Signature) String() string {
	return hexutil.Encode(s)
}
