package txsign

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseRawTransaction(t *testing.T) {
	tx, err := ParseRawTransaction(map[string]any{
		"to":       testRecipient,
		"nonce":    9,
		"gasPrice": "20000000000",
		"gas":      uint64(21000),
		"value":    big.NewInt(1_000_000_000_000_000_000),
		"data":     "",
		"chainId":  1,
	})
	require.NoError(t, err)

	got, err := Canonicalize(tx)
	require.NoError(t, err)
	want, err := Canonicalize(sampleTx())
	require.NoError(t, err)
	assert.Equal(t, want.EncodeUnsigned(), got.EncodeUnsigned())
}

func TestParseRawTransactionTypes(t *testing.T) {
	t.Run("typed passthrough", func(t *testing.T) {
		in := sampleTx()
		got, err := ParseRawTransaction(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)

		got, err = ParseRawTransaction(&in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("numeric forms", func(t *testing.T) {
		values := []any{
			int32(5), int64(5), uint(5), uint32(5), 5.0, json.Number("5"),
			uint256.NewInt(5), Uint64(5), "5", "0x05",
		}
		for _, v := range values {
			tx, err := ParseRawTransaction(map[string]any{"nonce": v})
			require.NoError(t, err, "%T", v)
			f, err := Canonicalize(tx)
			require.NoError(t, err, "%T", v)
			assert.Equal(t, []byte{5}, f[FieldNonce], "%T", v)
		}
	})

	t.Run("data forms", func(t *testing.T) {
		for _, v := range []any{"0x0102", []byte{1, 2}, PayloadHex("102")} {
			tx, err := ParseRawTransaction(map[string]any{"data": v})
			require.NoError(t, err, "%T", v)
			f, err := Canonicalize(tx)
			require.NoError(t, err, "%T", v)
			assert.Equal(t, []byte{1, 2}, f[FieldData], "%T", v)
		}
	})
}

func TestParseRawTransactionRejects(t *testing.T) {
	var nilTx *RawTransaction

	tcs := []struct {
		name  string
		input any
		err   error
	}{
		{"empty string", "", ErrInvalidInput},
		{"nil", nil, ErrInvalidInput},
		{"integer", 123, ErrInvalidInput},
		{"slice", []any{"0x01"}, ErrInvalidInput},
		{"nil pointer", nilTx, ErrInvalidInput},
		{"numeric recipient", map[string]any{"to": 35}, ErrInvalidAddress},
		{"negative nonce", map[string]any{"nonce": -1}, ErrInvalidField},
		{"boolean value", map[string]any{"value": true}, ErrInvalidField},
		{"nan gas price", map[string]any{"gasPrice": math.NaN()}, ErrInvalidField},
		{"numeric data", map[string]any{"data": 5}, ErrInvalidPayload},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRawTransaction(tc.input)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRawTransactionUnmarshalJSON(t *testing.T) {
	doc := `{
		"to": "0x3535353535353535353535353535353535353535",
		"nonce": 9,
		"gasPrice": "20000000000",
		"gasLimit": "0x5208",
		"value": 1e18,
		"data": "",
		"from": "ignored"
	}`

	var tx RawTransaction
	require.NoError(t, json.Unmarshal([]byte(doc), &tx))

	got, err := Canonicalize(tx)
	require.NoError(t, err)
	want, err := Canonicalize(sampleTx())
	require.NoError(t, err)
	assert.Equal(t, want.EncodeUnsigned(), got.EncodeUnsigned())

	t.Run("fractional number", func(t *testing.T) {
		var tx RawTransaction
		require.NoError(t, json.Unmarshal([]byte(`{"value": 1.5}`), &tx))
		_, err := Canonicalize(tx)
		require.ErrorIs(t, err, ErrInvalidField)
	})

	t.Run("not an object", func(t *testing.T) {
		var tx RawTransaction
		err := json.Unmarshal([]byte(`["0x01"]`), &tx)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("in a larger document", func(t *testing.T) {
		var batch struct {
			Transactions []RawTransaction `json:"transactions"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"transactions": [{"nonce": 1}, {"nonce": 2}]}`), &batch))
		require.Len(t, batch.Transactions, 2)

		f, err := Canonicalize(batch.Transactions[1])
		require.NoError(t, err)
		assert.Equal(t, []byte{2}, f[FieldNonce])
	})
}

func TestRawTransactionUnmarshalYAML(t *testing.T) {
	doc := `
to: "0x3535353535353535353535353535353535353535"
nonce: 9
gasPrice: 20000000000
gas: 21000
value: "1000000000000000000"
`

	var tx RawTransaction
	require.NoError(t, yaml.Unmarshal([]byte(doc), &tx))

	got, err := Canonicalize(tx)
	require.NoError(t, err)
	want, err := Canonicalize(sampleTx())
	require.NoError(t, err)
	assert.Equal(t, want.EncodeUnsigned(), got.EncodeUnsigned())

	t.Run("not a mapping", func(t *testing.T) {
		var tx RawTransaction
		err := yaml.Unmarshal([]byte("- 1\n- 2\n"), &tx)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
