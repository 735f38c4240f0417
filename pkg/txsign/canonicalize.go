package txsign

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Canonicalize converts tx into its canonical fields. The six unsigned
// fields are set and v, r and s are left empty.
func Canonicalize(tx RawTransaction) (Fields, error) {
	var f Fields

	to, err := canonicalAddress(tx.To)
	if err != nil {
		return Fields{}, err
	}
	gasLimit, err := canonicalGasLimit(tx.GasLimit, tx.Gas)
	if err != nil {
		return Fields{}, err
	}
	data, err := tx.Data.Bytes()
	if err != nil {
		return Fields{}, fmt.Errorf("data: %w", err)
	}

	if f[FieldNonce], err = tx.Nonce.Bytes(); err != nil {
		return Fields{}, fmt.Errorf("nonce: %w", err)
	}
	if f[FieldGasPrice], err = tx.GasPrice.Bytes(); err != nil {
		return Fields{}, fmt.Errorf("gasPrice: %w", err)
	}
	if f[FieldValue], err = tx.Value.Bytes(); err != nil {
		return Fields{}, fmt.Errorf("value: %w", err)
	}
	f[FieldGasLimit] = gasLimit
	f[FieldTo] = to
	f[FieldData] = data
	f[FieldV], f[FieldR], f[FieldS] = []byte{}, []byte{}, []byte{}
	return f, nil
}

// canonicalAddress decodes the recipient. The empty string, with or
// without a 0x prefix, is a contract creation. An odd digit count gets a
// leading zero nibble, as payloads do.
func canonicalAddress(to string) ([]byte, error) {
	digits, _ := cutHexPrefix(to)
	if digits == "" {
		return []byte{}, nil
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(b) != common.AddressLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidAddress, len(b), common.AddressLength)
	}
	return b, nil
}

// canonicalGasLimit resolves the gasLimit/gas alias. When both are given
// they must agree.
func canonicalGasLimit(gasLimit, gas Quantity) ([]byte, error) {
	limit, err := gasLimit.Bytes()
	if err != nil {
		return nil, fmt.Errorf("gasLimit: %w", err)
	}
	if !gas.IsSet() {
		return limit, nil
	}

	alias, err := gas.Bytes()
	if err != nil {
		return nil, fmt.Errorf("gas: %w", err)
	}
	if gasLimit.IsSet() && !bytes.Equal(limit, alias) {
		return nil, fmt.Errorf("%w: gas %#x and gasLimit %#x disagree", ErrInvalidField, alias, limit)
	}
	return alias, nil
}
