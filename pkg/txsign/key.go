package txsign

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/erc7824/nitrolite/txsigner/pkg/sign"
)

// PrivateKey is a secp256k1 private key given as hex text or raw bytes.
// Its material is copied into a fresh buffer for every signing call and
// that buffer is zeroed when the call returns.
type PrivateKey struct {
	hex   string
	raw   []byte
	isHex bool
}

// KeyFromHex takes 64 hex digits with an optional 0x prefix.
func KeyFromHex(s string) PrivateKey {
	return PrivateKey{hex: s, isHex: true}
}

// KeyFromBytes copies b, which must be 32 bytes long.
func KeyFromBytes(b []byte) PrivateKey {
	return PrivateKey{raw: append([]byte{}, b...)}
}

// ParsePrivateKey accepts a string or a byte slice. Any other value,
// including nil, is rejected.
func ParsePrivateKey(v any) (PrivateKey, error) {
	switch k := v.(type) {
	case string:
		return KeyFromHex(k), nil
	case []byte:
		return KeyFromBytes(k), nil
	case PrivateKey:
		return k, nil
	default:
		return PrivateKey{}, fmt.Errorf("%w: unsupported key type %T", ErrInvalidKey, v)
	}
}

// material returns a fresh copy of the key bytes. Callers zero it.
func (k PrivateKey) material() ([]byte, error) {
	var b []byte
	if k.isHex {
		digits, _ := cutHexPrefix(k.hex)
		decoded, err := hexutil.Decode("0x" + digits)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed hex", ErrInvalidKey)
		}
		b = decoded
	} else {
		b = append([]byte{}, k.raw...)
	}

	if len(b) != sign.PrivateKeyLength {
		clear(b)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(b), sign.PrivateKeyLength)
	}
	return b, nil
}
