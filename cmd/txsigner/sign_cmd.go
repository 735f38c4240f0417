package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/erc7824/nitrolite/txsigner/pkg/log"
	"github.com/erc7824/nitrolite/txsigner/pkg/txsign"
)

func newSignCmd(a *app) *cobra.Command {
	var asFields bool

	cmd := &cobra.Command{
		Use:   "sign <tx.json|tx.yaml|->",
		Short: "Sign an unsigned transaction read from a JSON or YAML file",
		Long: `sign reads an unsigned transaction with the keys to, nonce, gasPrice,
gasLimit (or gas), value and data, signs it with TXSIGNER_PRIVATE_KEY and
prints the 0x-prefixed encoded transaction. Use - to read JSON from stdin.
Without TXSIGNER_PRIVATE_KEY the key is prompted for on a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := readTransaction(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			key, err := a.privateKey(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			signer, err := a.newSigner(cmd.Context())
			if err != nil {
				return err
			}
			signed, err := signer.Sign(tx, key)
			if err != nil {
				return fmt.Errorf("failed to sign transaction: %w", err)
			}
			log.FromContext(cmd.Context()).Info("transaction signed", "hash", signed.Hash().Hex())

			out := cmd.OutOrStdout()
			if !asFields {
				_, err = fmt.Fprintln(out, signed.Hex())
				return err
			}
			return writeFields(out, signed.Fields)
		},
	}

	cmd.Flags().BoolVar(&asFields, "fields", false, "print the nine fields as a JSON array of hex strings")
	return cmd
}

// privateKey returns the configured key, or prompts for one when in is a
// terminal. The prompt goes to w.
func (a *app) privateKey(in io.Reader, w io.Writer) (txsign.PrivateKey, error) {
	if a.config.PrivateKey != "" {
		return txsign.KeyFromHex(a.config.PrivateKey), nil
	}

	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return txsign.PrivateKey{}, fmt.Errorf("%s environment variable is required", privateKeyEnv)
	}
	fd := int(f.Fd())
	fmt.Fprint(w, "Paste private key: ")
	input, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return txsign.PrivateKey{}, fmt.Errorf("failed to read private key: %w", err)
	}
	defer clear(input)

	raw, err := decodeHex(strings.TrimSpace(string(input)))
	if err != nil {
		return txsign.PrivateKey{}, fmt.Errorf("%w: malformed hex", txsign.ErrInvalidKey)
	}
	defer clear(raw)
	return txsign.KeyFromBytes(raw), nil
}

// readTransaction decodes YAML for .yaml and .yml files and JSON otherwise.
func readTransaction(stdin io.Reader, path string) (txsign.RawTransaction, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return txsign.RawTransaction{}, fmt.Errorf("failed to read transaction: %w", err)
	}

	var tx txsign.RawTransaction
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tx)
	default:
		err = json.Unmarshal(data, &tx)
	}
	if err != nil {
		return txsign.RawTransaction{}, fmt.Errorf("failed to parse transaction %s: %w", path, err)
	}
	return tx, nil
}

func writeFields(w io.Writer, fields txsign.Fields) error {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = hexutil.Encode(f)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
