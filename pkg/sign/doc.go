// Package sign provides the hash and elliptic-curve primitives used to sign
// and recover legacy transactions.
//
// The primitives are interfaces so callers can swap or mock them:
//
//   - Hasher: maps bytes to a 32-byte digest (Keccak256 is the legacy
//     Keccak-256 used by Ethereum, not the standardized SHA3-256)
//   - Curve: recoverable secp256k1 signing over a digest and public key
//     recovery from a signature
//
// Two secp256k1 backends are provided, EthereumCurve (go-ethereum crypto)
// and DecredCurve (dcrd secp256k1). Both use RFC 6979 nonces and produce
// low-s signatures, so they return identical signatures for the same key
// and digest. MockCurve is a predictable stand-in for tests.
//
// # Security Design
//
// Curves receive the raw 32-byte private key per call and keep nothing
// once the call returns. No implementation logs or stores key material.
//
// Usage
//
//	curve, err := sign.NewCurve(sign.BackendEthereum)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	digest := sign.Keccak256([]byte("hello world"))
//	sig, err := curve.Sign(digest, privateKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pub, err := curve.Recover(digest, sig)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	addr, _ := sign.PubkeyToAddress(pub)
//	fmt.Println("Address:", addr.Hex())
package sign
