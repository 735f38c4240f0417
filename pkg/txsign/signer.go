package txsign

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/erc7824/nitrolite/txsigner/pkg/log"
	"github.com/erc7824/nitrolite/txsigner/pkg/sign"
)

// SignerConfig selects the primitives and observers of a Signer. Nil
// fields fall back to DefaultSignerConfig.
type SignerConfig struct {
	// Curve signs digests and recovers public keys.
	Curve sign.Curve
	// Hasher produces the digest of the unsigned fields.
	Hasher sign.Hasher
	Logger log.Logger
	// Metrics is optional; nil disables counting.
	Metrics *Metrics
}

// DefaultSignerConfig signs with go-ethereum's secp256k1 over Keccak-256
// and logs nothing.
var DefaultSignerConfig = SignerConfig{
	Curve:  sign.EthereumCurve{},
	Hasher: sign.Keccak256Hasher{},
	Logger: log.NewNoopLogger(),
}

// Signer signs legacy transactions and recovers their signers. It is
// immutable once built and safe for concurrent use.
type Signer struct {
	curve   sign.Curve
	hasher  sign.Hasher
	logger  log.Logger
	metrics *Metrics
}

// NewSigner creates a Signer with the given configuration.
func NewSigner(cfg SignerConfig) *Signer {
	if cfg.Curve == nil {
		cfg.Curve = DefaultSignerConfig.Curve
	}
	if cfg.Hasher == nil {
		cfg.Hasher = DefaultSignerConfig.Hasher
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultSignerConfig.Logger
	}
	return &Signer{
		curve:   cfg.Curve,
		hasher:  cfg.Hasher,
		logger:  cfg.Logger.WithName("txsign").WithKV("backend", curveName(cfg.Curve)),
		metrics: cfg.Metrics,
	}
}

// SignedTransaction is the result of signing.
type SignedTransaction struct {
	// Fields are the nine canonical fields with v, r and s filled in.
	Fields Fields
	// Raw is the RLP encoding of Fields.
	Raw       []byte
	Signature sign.Signature
}

// Hex returns Raw as 0x-prefixed hex.
func (t *SignedTransaction) Hex() string {
	return hexutil.Encode(t.Raw)
}

// Hash returns the transaction hash, the Keccak-256 digest of Raw.
func (t *SignedTransaction) Hash() common.Hash {
	return common.BytesToHash(sign.Keccak256(t.Raw))
}

// Sign canonicalizes tx, signs the digest of its six unsigned fields and
// returns the signed nine-field transaction.
func (s *Signer) Sign(tx RawTransaction, key PrivateKey) (*SignedTransaction, error) {
	if s.metrics != nil {
		s.metrics.SignAttempts.Inc()
	}
	signed, err := s.sign(tx, key)
	if err != nil {
		kind := ErrorKind(err)
		if s.metrics != nil {
			s.metrics.SignFailures.WithLabelValues(kind).Inc()
		}
		s.logger.Debug("signing rejected", "kind", kind)
		return nil, err
	}
	s.logger.Debug("transaction signed", "raw_len", len(signed.Raw), "data_len", len(signed.Fields[FieldData]))
	return signed, nil
}

func (s *Signer) sign(tx RawTransaction, key PrivateKey) (*SignedTransaction, error) {
	fields, err := Canonicalize(tx)
	if err != nil {
		return nil, err
	}
	digest := s.hasher.Hash(fields.EncodeUnsigned())

	material, err := key.material()
	if err != nil {
		return nil, err
	}
	defer clear(material)

	sig, err := s.curve.Sign(digest, material)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailure, err)
	}

	fields[FieldV] = []byte{sig.V()}
	fields[FieldR] = trimLeadingZeros(sig.R())
	fields[FieldS] = trimLeadingZeros(sig.S())
	return &SignedTransaction{
		Fields:    fields,
		Raw:       fields.Encode(),
		Signature: sig,
	}, nil
}

// SignToHex signs tx and returns the 0x-prefixed hex of the encoding.
func (s *Signer) SignToHex(tx RawTransaction, key PrivateKey) (string, error) {
	signed, err := s.Sign(tx, key)
	if err != nil {
		return "", err
	}
	return signed.Hex(), nil
}

// SignToFields signs tx and returns the nine fields as distinct buffers.
func (s *Signer) SignToFields(tx RawTransaction, key PrivateKey) (Fields, error) {
	signed, err := s.Sign(tx, key)
	if err != nil {
		return Fields{}, err
	}
	return signed.Fields.Clone(), nil
}

func trimLeadingZeros(b []byte) []byte {
	return append([]byte{}, bytes.TrimLeft(b, "\x00")...)
}

func curveName(c sign.Curve) string {
	switch c.(type) {
	case sign.EthereumCurve:
		return string(sign.BackendEthereum)
	case sign.DecredCurve:
		return string(sign.BackendDecred)
	default:
		return fmt.Sprintf("%T", c)
	}
}

var defaultSigner = NewSigner(DefaultSignerConfig)

// Sign signs tx with the default Signer.
func Sign(tx RawTransaction, key PrivateKey) (*SignedTransaction, error) {
	return defaultSigner.Sign(tx, key)
}

// SignToHex signs tx with the default Signer.
func SignToHex(tx RawTransaction, key PrivateKey) (string, error) {
	return defaultSigner.SignToHex(tx, key)
}

// SignToFields signs tx with the default Signer.
func SignToFields(tx RawTransaction, key PrivateKey) (Fields, error) {
	return defaultSigner.SignToFields(tx, key)
}
