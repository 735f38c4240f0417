// Package txsign signs legacy (pre-EIP-155) Ethereum transactions and
// recovers the public key that signed one.
//
// A transaction is supplied as a RawTransaction, either built directly or
// parsed from a loosely typed mapping with ParseRawTransaction. Canonicalize
// turns it into the nine canonical Fields; the Keccak-256 hash of the RLP
// list of the first six is the signed digest.
//
// Signing:
//
//	key := txsign.KeyFromHex(os.Getenv("TXSIGNER_PRIVATE_KEY"))
//	signed, err := txsign.Sign(txsign.RawTransaction{
//		To:       "0x3535353535353535353535353535353535353535",
//		Nonce:    txsign.Uint64(9),
//		GasPrice: txsign.QuantityString("20000000000"),
//		GasLimit: txsign.Uint64(21000),
//		Value:    txsign.QuantityString("0xde0b6b3a7640000"),
//	}, key)
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(signed.Hex())
//
// Recovery works from the encoded transaction and a caller-supplied v, r
// and s, or from the transaction's own trailing fields with RecoverEmbedded.
//
// The package-level functions use a Signer with go-ethereum's secp256k1
// implementation. NewSigner takes a SignerConfig naming another
// sign.Curve, a logger or metrics. Errors wrap the package's Err* values and are tested with
// errors.Is.
package txsign
