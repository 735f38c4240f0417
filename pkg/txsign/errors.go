package txsign

import (
	"errors"

	"github.com/erc7824/nitrolite/txsigner/pkg/rlp"
)

// Every error returned by this package wraps one of these.
var (
	ErrInvalidInput      = errors.New("invalid transaction input")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidField      = errors.New("invalid field")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrInvalidKey        = errors.New("invalid private key")
	ErrSigningFailure    = errors.New("signing failed")
	ErrInvalidRecoveryID = errors.New("invalid recovery id")
	ErrRecoveryFailure   = errors.New("public key recovery failed")

	// ErrDecode is returned when signed bytes are not an RLP list of six or
	// nine byte strings.
	ErrDecode = rlp.ErrDecode
)

// errorKinds maps each sentinel to the label used in logs and metrics.
var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidInput, "invalid_input"},
	{ErrInvalidAddress, "invalid_address"},
	{ErrInvalidField, "invalid_field"},
	{ErrInvalidPayload, "invalid_payload"},
	{ErrInvalidKey, "invalid_key"},
	{ErrSigningFailure, "signing_failure"},
	{ErrInvalidRecoveryID, "invalid_recovery_id"},
	{ErrRecoveryFailure, "recovery_failure"},
	{ErrDecode, "decode"},
}

// ErrorKind returns a short label for err, or "unknown" when err wraps none
// of the package errors.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "unknown"
}
