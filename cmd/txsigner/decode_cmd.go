package main

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/erc7824/nitrolite/txsigner/pkg/sign"
	"github.com/erc7824/nitrolite/txsigner/pkg/txsign"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Print the fields of an encoded transaction as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHex(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", txsign.ErrDecode, err)
			}
			fields, err := txsign.DecodeFields(raw)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Field", "Value"})
			t.AppendSeparator()
			for i, f := range fields {
				t.AppendRow(table.Row{i + 1, txsign.FieldName(i), formatField(i, f)})
			}

			if fields.IsSigned() {
				t.AppendSeparator()
				t.AppendRow(table.Row{"", "hash", common.BytesToHash(sign.Keccak256(raw)).Hex()})
				t.AppendRow(table.Row{"", "signer", a.signerOf(cmd.Context(), raw)})
			}
			t.Render()
			return nil
		},
	}
}

// formatField renders numeric fields of up to 256 bits in decimal and
// everything else, longer numbers included, as hex.
func formatField(i int, b []byte) string {
	switch {
	case txsign.IsNumeric(i) && len(b) <= 32:
		return new(uint256.Int).SetBytes(b).Dec()
	case i == txsign.FieldTo && len(b) == 0:
		return "(contract creation)"
	case i == txsign.FieldTo && len(b) == common.AddressLength:
		return common.BytesToAddress(b).Hex()
	default:
		return hexutil.Encode(b)
	}
}

// signerOf describes who signed raw, or why that is unknown.
func (a *app) signerOf(ctx context.Context, raw []byte) string {
	signer, err := a.newSigner(ctx)
	if err != nil {
		return err.Error()
	}
	pub, err := signer.RecoverEmbedded(raw)
	if err != nil {
		return "unrecoverable (" + txsign.ErrorKind(err) + ")"
	}
	addr, err := sign.PubkeyToAddress(pub)
	if err != nil {
		return "unrecoverable (" + err.Error() + ")"
	}
	return addr.Hex()
}
