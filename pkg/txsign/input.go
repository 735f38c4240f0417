package txsign

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RawTransaction is the unsigned legacy transaction as supplied by the
// caller. Zero-valued fields are absent. Gas is an alias of GasLimit.
type RawTransaction struct {
	To       string
	Nonce    Quantity
	GasPrice Quantity
	GasLimit Quantity
	Gas      Quantity
	Value    Quantity
	Data     Payload
}

// ParseRawTransaction converts a loosely typed mapping, as produced by
// decoding JSON or YAML into an any, into a RawTransaction. The recognized
// keys are to, nonce, gasPrice, gasLimit, gas, value and data; others are
// ignored. Values are only checked for their type here. Their content is
// validated by Canonicalize.
func ParseRawTransaction(v any) (RawTransaction, error) {
	var m map[string]any
	switch in := v.(type) {
	case map[string]any:
		m = in
	case RawTransaction:
		return in, nil
	case *RawTransaction:
		if in == nil {
			return RawTransaction{}, fmt.Errorf("%w: nil transaction", ErrInvalidInput)
		}
		return *in, nil
	default:
		return RawTransaction{}, fmt.Errorf("%w: expected a mapping, got %T", ErrInvalidInput, v)
	}

	var (
		tx  RawTransaction
		err error
	)
	switch to := m["to"].(type) {
	case nil:
	case string:
		tx.To = to
	default:
		return RawTransaction{}, fmt.Errorf("%w: to must be a string, got %T", ErrInvalidAddress, to)
	}

	quantities := []struct {
		key string
		dst *Quantity
	}{
		{"nonce", &tx.Nonce},
		{"gasPrice", &tx.GasPrice},
		{"gasLimit", &tx.GasLimit},
		{"gas", &tx.Gas},
		{"value", &tx.Value},
	}
	for _, q := range quantities {
		if *q.dst, err = toQuantity(m[q.key]); err != nil {
			return RawTransaction{}, fmt.Errorf("%s: %w", q.key, err)
		}
	}

	switch data := m["data"].(type) {
	case nil:
	case string:
		tx.Data = PayloadHex(data)
	case []byte:
		tx.Data = PayloadBytes(data)
	case Payload:
		tx.Data = data
	default:
		return RawTransaction{}, fmt.Errorf("%w: data must be a hex string, got %T", ErrInvalidPayload, data)
	}
	return tx, nil
}

func toQuantity(v any) (Quantity, error) {
	switch n := v.(type) {
	case nil:
		return Quantity{}, nil
	case Quantity:
		return n, nil
	case string:
		return QuantityString(n), nil
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return Quantity{}, fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
		return Decimal(d), nil
	case int:
		return fromInt64(int64(n))
	case int32:
		return fromInt64(int64(n))
	case int64:
		return fromInt64(n)
	case uint:
		return Uint64(uint64(n)), nil
	case uint32:
		return Uint64(uint64(n)), nil
	case uint64:
		return Uint64(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Quantity{}, fmt.Errorf("%w: %v is not a number", ErrInvalidField, n)
		}
		return Decimal(decimal.NewFromFloat(n)), nil
	case *big.Int:
		return BigInt(n), nil
	case *uint256.Int:
		return Uint256(n), nil
	case decimal.Decimal:
		return Decimal(n), nil
	default:
		return Quantity{}, fmt.Errorf("%w: unsupported numeric type %T", ErrInvalidField, v)
	}
}

func fromInt64(n int64) (Quantity, error) {
	if n < 0 {
		return Quantity{}, fmt.Errorf("%w: negative value %d", ErrInvalidField, n)
	}
	return Uint64(uint64(n)), nil
}

// UnmarshalJSON decodes a JSON object through ParseRawTransaction. Numbers
// keep their full precision.
func (tx *RawTransaction) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	parsed, err := ParseRawTransaction(v)
	if err != nil {
		return err
	}
	*tx = parsed
	return nil
}

// UnmarshalYAML decodes a YAML mapping through ParseRawTransaction.
func (tx *RawTransaction) UnmarshalYAML(value *yaml.Node) error {
	var v any
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	parsed, err := ParseRawTransaction(v)
	if err != nil {
		return err
	}
	*tx = parsed
	return nil
}
