package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParametersValidate(t *testing.T) {
	req := require.New(t)

	req.NoError(Parameters{Parties: 3, Threshold: 2}.Validate())
	req.NoError(Parameters{Parties: 2, Threshold: 1}.Validate())
	req.NoError(Parameters{Parties: 5, Threshold: 5}.Validate())

	req.ErrorIs(Parameters{Parties: 1, Threshold: 1}.Validate(), ErrInvalidParameters)
	req.ErrorIs(Parameters{Parties: 3, Threshold: 0}.Validate(), ErrInvalidParameters)
	req.ErrorIs(Parameters{Parties: 3, Threshold: 4}.Validate(), ErrInvalidParameters)
}

func TestSignValueValidate(t *testing.T) {
	req := require.New(t)

	message := &SignMessage{Message: "hello", Digest: []byte("digest")}
	transaction := &SignTransaction{Transaction: TxParams{To: "0xAAA"}}

	req.NoError(SignValue{Kind: SigningKindMessage, Message: message}.Validate())
	req.NoError(SignValue{Kind: SigningKindTransaction, Transaction: transaction}.Validate())

	req.Error(SignValue{Kind: SigningKindMessage}.Validate())
	req.Error(SignValue{Kind: SigningKindTransaction, Message: message}.Validate())
	req.Error(SignValue{Kind: "unknown", Message: message}.Validate())
	req.Error(SignValue{Kind: SigningKindMessage, Message: message, Transaction: transaction}.Validate())
}

func TestErrorsDistinct(t *testing.T) {
	req := require.New(t)

	// The permission gate and the method table must stay distinguishable.
	req.False(errors.Is(ErrPermissionDenied, ErrMethodNotSupported))
	req.False(errors.Is(ErrMethodNotSupported, ErrPermissionDenied))
}
