package txsign_test

import (
	"encoding/json"
	"fmt"

	"github.com/erc7824/nitrolite/txsigner/pkg/sign"
	"github.com/erc7824/nitrolite/txsigner/pkg/txsign"
)

func ExampleSign() {
	key := txsign.KeyFromHex("0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")

	var tx txsign.RawTransaction
	doc := `{"to": "0x3535353535353535353535353535353535353535", "nonce": 9, "gasPrice": "20000000000", "gas": 21000, "value": "1000000000000000000"}`
	if err := json.Unmarshal([]byte(doc), &tx); err != nil {
		panic(err)
	}

	signed, err := txsign.Sign(tx, key)
	if err != nil {
		panic(err)
	}

	pub, err := txsign.RecoverEmbedded(signed.Raw)
	if err != nil {
		panic(err)
	}
	addr, err := sign.PubkeyToAddress(pub)
	if err != nil {
		panic(err)
	}

	fmt.Println("Fields:", len(signed.Fields))
	fmt.Println("Signer:", addr.Hex())

	// Output:
	// Fields: 9
	// Signer: 0x2c7536E3605D9C16a7a3D7b1898e529396a65c23
}

func ExampleCanonicalize() {
	fields, err := txsign.Canonicalize(txsign.RawTransaction{
		Nonce: txsign.Uint64(0),
		Data:  txsign.PayloadHex("0"),
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("nonce: [%x]\n", fields[txsign.FieldNonce])
	fmt.Printf("data: [%x]\n", fields[txsign.FieldData])
	fmt.Printf("unsigned: %x\n", fields.EncodeUnsigned())

	// Output:
	// nonce: []
	// data: [00]
	// unsigned: c6808080808000
}
