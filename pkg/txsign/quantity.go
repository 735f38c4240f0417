package txsign

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

type quantityKind uint8

const (
	quantityAbsent quantityKind = iota
	quantityUint64
	quantityBig
	quantityUint256
	quantityDecimal
	quantityText
)

// Quantity is a non-negative integer of at most 256 bits given in one of
// several representations. The zero value is an absent quantity, which
// encodes like zero.
type Quantity struct {
	kind quantityKind
	u64  uint64
	big  *big.Int
	u256 *uint256.Int
	dec  decimal.Decimal
	text string
}

// Uint64 wraps n.
func Uint64(n uint64) Quantity {
	return Quantity{kind: quantityUint64, u64: n}
}

// BigInt wraps n. A nil n is an absent quantity.
func BigInt(n *big.Int) Quantity {
	if n == nil {
		return Quantity{}
	}
	return Quantity{kind: quantityBig, big: new(big.Int).Set(n)}
}

// Uint256 wraps n. A nil n is an absent quantity.
func Uint256(n *uint256.Int) Quantity {
	if n == nil {
		return Quantity{}
	}
	return Quantity{kind: quantityUint256, u256: n.Clone()}
}

// Decimal wraps d, which must be integral and non-negative.
func Decimal(d decimal.Decimal) Quantity {
	return Quantity{kind: quantityDecimal, dec: d}
}

// QuantityString parses s lazily. Text with a 0x prefix is hex. Without
// the prefix, digits only are base-10 and anything with a-f is hex, so
// "10" is ten and "1a" is twenty-six.
func QuantityString(s string) Quantity {
	return Quantity{kind: quantityText, text: s}
}

// IsSet reports whether q carries a value.
func (q Quantity) IsSet() bool {
	return q.kind != quantityAbsent
}

// Int returns q as a 256-bit integer.
func (q Quantity) Int() (*uint256.Int, error) {
	switch q.kind {
	case quantityAbsent:
		return new(uint256.Int), nil
	case quantityUint64:
		return uint256.NewInt(q.u64), nil
	case quantityUint256:
		return q.u256.Clone(), nil
	case quantityBig:
		return fromBig(q.big)
	case quantityDecimal:
		return fromDecimal(q.dec)
	case quantityText:
		return parseQuantityText(q.text)
	default:
		return nil, fmt.Errorf("%w: unknown quantity kind %d", ErrInvalidField, q.kind)
	}
}

// Bytes returns the minimal big-endian encoding of q. Zero and absent
// quantities encode as the empty string.
func (q Quantity) Bytes() ([]byte, error) {
	n, err := q.Int()
	if err != nil {
		return nil, err
	}
	if n.IsZero() {
		return []byte{}, nil
	}
	return n.Bytes(), nil
}

func fromBig(b *big.Int) (*uint256.Int, error) {
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", ErrInvalidField, b)
	}
	n, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: value exceeds 256 bits", ErrInvalidField)
	}
	return n, nil
}

func fromDecimal(d decimal.Decimal) (*uint256.Int, error) {
	if !d.IsInteger() {
		return nil, fmt.Errorf("%w: fractional value %s", ErrInvalidField, d)
	}
	return fromBig(d.BigInt())
}

const (
	decimalDigits = "0123456789"
	hexDigits     = "0123456789abcdefABCDEF"
)

// parseQuantityText reads prefixed text as hex. Unprefixed text is decimal
// when it is all digits and hex when it also holds the letters a-f.
func parseQuantityText(s string) (*uint256.Int, error) {
	digits, prefixed := cutHexPrefix(s)
	switch {
	case prefixed && digits == "":
		return new(uint256.Int), nil
	case !prefixed && digits != "" && strings.Trim(digits, decimalDigits) == "":
		d, err := decimal.NewFromString(digits)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
		return fromDecimal(d)
	}

	if digits == "" || strings.Trim(digits, hexDigits) != "" {
		return nil, fmt.Errorf("%w: %q is neither hex nor a base-10 integer", ErrInvalidField, s)
	}
	b, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not hex", ErrInvalidField, s)
	}
	return fromBig(b)
}

// cutHexPrefix strips a leading 0x or 0X.
func cutHexPrefix(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return s, false
}
