package sign

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

var _ Curve = EthereumCurve{}

// EthereumCurve is the secp256k1 Curve of go-ethereum's crypto package.
type EthereumCurve struct{}

// Sign expects digest to be a hash (e.g., Keccak256 of the encoded tx).
func (EthereumCurve) Sign(digest, privateKey []byte) (Signature, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidDigest, len(digest), DigestLength)
	}
	if len(privateKey) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(privateKey), PrivateKeyLength)
	}

	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	defer key.D.SetInt64(0)

	sig, err := ethcrypto.Sign(digest, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	// Adjust V from 0/1 to 27/28.
	sig[64] += LegacyRecoveryOffset
	return Signature(sig), nil
}

// Recover returns the 65-byte uncompressed public key behind sig, using
// crypto.Ecrecover.
func (EthereumCurve) Recover(digest []byte, sig Signature) ([]byte, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidDigest, len(digest), DigestLength)
	}
	if err := sig.validate(); err != nil {
		return nil, err
	}

	r := new(big.Int).SetBytes(sig.R())
	s := new(big.Int).SetBytes(sig.S())
	if !ethcrypto.ValidateSignatureValues(sig.RecoveryID(), r, s, false) {
		return nil, fmt.Errorf("%w: r or s out of range", ErrInvalidSignature)
	}

	localSig := make([]byte, SignatureLength)
	copy(localSig, sig)
	localSig[64] = sig.RecoveryID()

	pub, err := ethcrypto.Ecrecover(digest, localSig)
	if err != nil {
		return nil, fmt.Errorf("%w: signature recovery failed: %v", ErrInvalidSignature, err)
	}
	return pub, nil
}

// PubkeyToAddress derives the account address of an uncompressed public
// key, given either as 65 bytes with the 0x04 prefix or as the bare 64-byte
// point: the low 20 bytes of its Keccak-256 hash.
func PubkeyToAddress(pub []byte) (common.Address, error) {
	if len(pub) == 64 {
		pub = append([]byte{0x04}, pub...)
	}
	key, err := ethcrypto.UnmarshalPubkey(pub)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return common.BytesToAddress(Keccak256(ethcrypto.FromECDSAPub(key)[1:])[12:]), nil
}
