// Package noise generates the handshake keypair used to encrypt
// session traffic between a party and the rendezvous server.
package noise

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"github.com/mpcwallet/tkeyring/client/types"
)

const pemBlockType = "X25519 PRIVATE KEY"

// GenerateKeypair generates a fresh X25519 keypair. The private scalar
// is PEM-encoded, the public key is hex-encoded.
func GenerateKeypair() (*types.Keypair, error) {
	priv := make([]byte, curve25519.ScalarSize)
	if _, err := rand.Read(priv); err != nil {
		return nil, fmt.Errorf("failed to read random scalar: %w", err)
	}

	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}

	pemBz := pem.EncodeToMemory(&pem.Block{
		Type:  pemBlockType,
		Bytes: priv,
	})

	return &types.Keypair{
		PEM:       string(pemBz),
		PublicKey: hex.EncodeToString(pub),
	}, nil
}
