package txsign

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/erc7824/nitrolite/txsigner/pkg/sign"
)

// Recover returns the 65-byte uncompressed public key that produced the
// signature (v, r, s) over the six unsigned fields of signed. signed may be
// the six- or nine-field encoding; any trailing v, r and s are ignored.
// v is 27, 28, 0 or 1.
func (s *Signer) Recover(signed []byte, v uint64, r, sScalar []byte) ([]byte, error) {
	if s.metrics != nil {
		s.metrics.RecoverAttempts.Inc()
	}
	pub, err := s.recover(signed, v, r, sScalar)
	if err != nil {
		kind := ErrorKind(err)
		if s.metrics != nil {
			s.metrics.RecoverFailures.WithLabelValues(kind).Inc()
		}
		s.logger.Debug("recovery rejected", "kind", kind)
		return nil, err
	}
	s.logger.Debug("public key recovered", "signed_len", len(signed))
	return pub, nil
}

func (s *Signer) recover(signed []byte, v uint64, r, sScalar []byte) ([]byte, error) {
	fields, err := DecodeFields(signed)
	if err != nil {
		return nil, err
	}
	digest := s.hasher.Hash(fields.EncodeUnsigned())

	recoveryID, err := normalizeV(v)
	if err != nil {
		return nil, err
	}
	sig, err := sign.NewSignature(recoveryID, r, sScalar)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecoveryFailure, err)
	}
	pub, err := s.curve.Recover(digest, sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecoveryFailure, err)
	}
	return pub, nil
}

// RecoverHex is Recover for a hex encoded transaction with an optional 0x
// prefix.
func (s *Signer) RecoverHex(signed string, v uint64, r, sScalar []byte) ([]byte, error) {
	digits, _ := cutHexPrefix(signed)
	raw, err := hexutil.Decode("0x" + digits)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecoverAttempts.Inc()
			s.metrics.RecoverFailures.WithLabelValues(ErrorKind(ErrDecode)).Inc()
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return s.Recover(raw, v, r, sScalar)
}

// RecoverEmbedded recovers the signer of a nine-field transaction from its
// own v, r and s fields.
func (s *Signer) RecoverEmbedded(signed []byte) ([]byte, error) {
	fields, err := DecodeFields(signed)
	if err != nil {
		return nil, err
	}
	if !fields.IsSigned() {
		return nil, fmt.Errorf("%w: transaction carries no signature", ErrRecoveryFailure)
	}
	v := fields[FieldV]
	if len(v) > 8 {
		return nil, fmt.Errorf("%w: v is %d bytes long", ErrInvalidRecoveryID, len(v))
	}
	return s.Recover(signed, new(big.Int).SetBytes(v).Uint64(), fields[FieldR], fields[FieldS])
}

func normalizeV(v uint64) (byte, error) {
	switch v {
	case 0, 1:
		return byte(v), nil
	case sign.LegacyRecoveryOffset, sign.LegacyRecoveryOffset + 1:
		return byte(v - sign.LegacyRecoveryOffset), nil
	default:
		return 0, fmt.Errorf("%w: v must be 27, 28, 0 or 1, got %d", ErrInvalidRecoveryID, v)
	}
}

// Recover recovers with the default Signer.
func Recover(signed []byte, v uint64, r, s []byte) ([]byte, error) {
	return defaultSigner.Recover(signed, v, r, s)
}

// RecoverHex recovers from hex with the default Signer.
func RecoverHex(signed string, v uint64, r, s []byte) ([]byte, error) {
	return defaultSigner.RecoverHex(signed, v, r, s)
}

// RecoverEmbedded recovers from the trailing fields with the default Signer.
func RecoverEmbedded(signed []byte) ([]byte, error) {
	return defaultSigner.RecoverEmbedded(signed)
}
