package main

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/erc7824/nitrolite/txsigner/pkg/sign"
)

func newRecoverCmd(a *app) *cobra.Command {
	var embedded bool

	cmd := &cobra.Command{
		Use:   "recover <signed-hex> [<v> <r> <s>]",
		Short: "Recover the public key and address that signed a transaction",
		Long: `recover hashes the six unsigned fields of an encoded transaction and
recovers the signer from v (27, 28, 0 or 1), r and s. With --embedded the
signature is taken from the transaction's own trailing fields.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if embedded {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(4)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := a.newSigner(cmd.Context())
			if err != nil {
				return err
			}

			var pub []byte
			if embedded {
				raw, err := decodeHex(args[0])
				if err != nil {
					return fmt.Errorf("invalid signed transaction: %w", err)
				}
				pub, err = signer.RecoverEmbedded(raw)
				if err != nil {
					return fmt.Errorf("failed to recover signer: %w", err)
				}
			} else {
				v, err := strconv.ParseUint(args[1], 0, 64)
				if err != nil {
					return fmt.Errorf("invalid v %q: %w", args[1], err)
				}
				r, err := decodeHex(args[2])
				if err != nil {
					return fmt.Errorf("invalid r: %w", err)
				}
				s, err := decodeHex(args[3])
				if err != nil {
					return fmt.Errorf("invalid s: %w", err)
				}
				pub, err = signer.RecoverHex(args[0], v, r, s)
				if err != nil {
					return fmt.Errorf("failed to recover signer: %w", err)
				}
			}

			addr, err := sign.PubkeyToAddress(pub)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "public key: %s\n", hexutil.Encode(pub))
			fmt.Fprintf(out, "address:    %s\n", addr.Hex())
			return nil
		},
	}

	cmd.Flags().BoolVar(&embedded, "embedded", false, "take v, r and s from the transaction itself")
	return cmd
}

// decodeHex accepts hex with or without a 0x prefix.
func decodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return hexutil.Decode("0x" + s)
}
