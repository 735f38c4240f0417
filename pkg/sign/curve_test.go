package sign

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPrivKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

var curves = map[string]Curve{
	"ethereum": EthereumCurve{},
	"decred":   DecredCurve{},
}

func testKey(t *testing.T) []byte {
	t.Helper()
	return hexutil.MustDecode(testPrivKey)
}

// secp256k1 group order.
var curveN = ethcrypto.S256().Params().N

func TestCurveSignAndRecover(t *testing.T) {
	digest := Keccak256([]byte("test message for signing"))

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			sig, err := curve.Sign(digest, testKey(t))
			require.NoError(t, err)
			require.Len(t, sig, SignatureLength)
			assert.Contains(t, []byte{27, 28}, sig.V())

			pub, err := curve.Recover(digest, sig)
			require.NoError(t, err)
			require.Len(t, pub, 65)
			assert.Equal(t, byte(0x04), pub[0])

			addr, err := PubkeyToAddress(pub)
			require.NoError(t, err)
			assert.True(t, strings.EqualFold(testAddress, addr.Hex()))
		})
	}
}

func TestCurveDeterministicLowS(t *testing.T) {
	halfN := new(big.Int).Rsh(curveN, 1)

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 16; i++ {
				digest := Keccak256([]byte{byte(i)})

				first, err := curve.Sign(digest, testKey(t))
				require.NoError(t, err)
				second, err := curve.Sign(digest, testKey(t))
				require.NoError(t, err)
				assert.Equal(t, first, second)

				s := new(big.Int).SetBytes(first.S())
				assert.True(t, s.Cmp(halfN) <= 0, "high s for digest %d", i)
			}
		})
	}
}

func TestCurveBackendsAgree(t *testing.T) {
	for i := 0; i < 16; i++ {
		digest := Keccak256([]byte("agree"), []byte{byte(i)})

		ethSig, err := EthereumCurve{}.Sign(digest, testKey(t))
		require.NoError(t, err)
		dcrSig, err := DecredCurve{}.Sign(digest, testKey(t))
		require.NoError(t, err)
		assert.Equal(t, ethSig, dcrSig)

		ethPub, err := EthereumCurve{}.Recover(digest, dcrSig)
		require.NoError(t, err)
		dcrPub, err := DecredCurve{}.Recover(digest, ethSig)
		require.NoError(t, err)
		assert.Equal(t, ethPub, dcrPub)
	}
}

func TestCurveSignErrors(t *testing.T) {
	digest := Keccak256([]byte("x"))
	orderBytes := curveN.FillBytes(make([]byte, 32))

	tests := []struct {
		name   string
		digest []byte
		key    []byte
		err    error
	}{
		{"short digest", digest[:31], testKey(t), ErrInvalidDigest},
		{"short key", digest, testKey(t)[:31], ErrInvalidPrivateKey},
		{"zero key", digest, make([]byte, 32), ErrInvalidPrivateKey},
		{"key equal to order", digest, orderBytes, ErrInvalidPrivateKey},
		{"key above order", digest, bytes.Repeat([]byte{0xff}, 32), ErrInvalidPrivateKey},
	}

	for name, curve := range curves {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				sig, err := curve.Sign(tt.digest, tt.key)
				assert.Nil(t, sig)
				assert.ErrorIs(t, err, tt.err)
			})
		}
	}
}

func TestCurveRecoverErrors(t *testing.T) {
	digest := Keccak256([]byte("some data to sign"))

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			sig, err := curve.Sign(digest, testKey(t))
			require.NoError(t, err)

			mutate := func(f func(Signature)) Signature {
				c := make(Signature, len(sig))
				copy(c, sig)
				f(c)
				return c
			}

			bad := map[string]Signature{
				"short":    sig[:64],
				"v 0":      mutate(func(s Signature) { s[64] = 0 }),
				"v 29":     mutate(func(s Signature) { s[64] = 29 }),
				"zero r":   mutate(func(s Signature) { copy(s[:32], make([]byte, 32)) }),
				"zero s":   mutate(func(s Signature) { copy(s[32:64], make([]byte, 32)) }),
				"r over n": mutate(func(s Signature) { copy(s[:32], bytes.Repeat([]byte{0xff}, 32)) }),
			}
			for label, b := range bad {
				_, err := curve.Recover(digest, b)
				assert.ErrorIs(t, err, ErrInvalidSignature, label)
			}

			_, err = curve.Recover(digest[:16], sig)
			assert.ErrorIs(t, err, ErrInvalidDigest)

			// Another digest either fails or yields a different key.
			other := Keccak256([]byte("other data"))
			pub, err := curve.Recover(other, sig)
			if err == nil {
				want, err := curve.Recover(digest, sig)
				require.NoError(t, err)
				assert.NotEqual(t, want, pub)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSignature)
			}
		})
	}
}

func TestPubkeyToAddress(t *testing.T) {
	key, err := ethcrypto.ToECDSA(testKey(t))
	require.NoError(t, err)
	pub := ethcrypto.FromECDSAPub(&key.PublicKey)

	t.Run("Prefixed", func(t *testing.T) {
		addr, err := PubkeyToAddress(pub)
		require.NoError(t, err)
		assert.Equal(t, ethcrypto.PubkeyToAddress(key.PublicKey), addr)
	})

	t.Run("Bare point", func(t *testing.T) {
		addr, err := PubkeyToAddress(pub[1:])
		require.NoError(t, err)
		assert.True(t, strings.EqualFold(testAddress, addr.Hex()))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := PubkeyToAddress(pub[:33])
		assert.ErrorIs(t, err, ErrInvalidPublicKey)

		offCurve := make([]byte, 65)
		offCurve[0] = 0x04
		_, err = PubkeyToAddress(offCurve)
		assert.ErrorIs(t, err, ErrInvalidPublicKey)
	})
}
