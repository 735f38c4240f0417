package sign

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

var _ Curve = DecredCurve{}

// DecredCurve is a pure Go secp256k1 Curve built on dcrd's compact
// signatures. Compact signatures are laid out as V || R || S with V equal
// to 27 + recovery id for uncompressed keys.
type DecredCurve struct{}

// Sign produces a low-s compact signature over digest. privateKey must be
// 32 bytes and a valid scalar.
func (DecredCurve) Sign(digest, privateKey []byte) (Signature, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidDigest, len(digest), DigestLength)
	}
	if len(privateKey) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(privateKey), PrivateKeyLength)
	}

	// PrivKeyFromBytes reduces modulo n silently, so range-check first.
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(privateKey); overflow || scalar.IsZero() {
		scalar.Zero()
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidPrivateKey)
	}
	key := secp256k1.NewPrivateKey(&scalar)
	defer key.Zero()
	defer scalar.Zero()

	compact := ecdsa.SignCompact(key, digest, false)

	sig := make(Signature, SignatureLength)
	copy(sig, compact[1:])
	sig[64] = compact[0]
	return sig, nil
}

// Recover returns the 65-byte uncompressed public key behind sig.
func (DecredCurve) Recover(digest []byte, sig Signature) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidDigest, len(digest), DigestLength)
	}
	if err := sig.validate(); err != nil {
		return nil, err
	}

	compact := make([]byte, SignatureLength)
	compact[0] = sig.V()
	copy(compact[1:], sig[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: signature recovery failed: %v", ErrInvalidSignature, err)
	}
	return pub.SerializeUncompressed(), nil
}
