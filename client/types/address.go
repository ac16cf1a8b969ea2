package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DeriveAddress derives the checksummed account address from the
// aggregated public key produced by key generation. The key is the
// 65-byte uncompressed SEC1 encoding; the leading 0x04 byte is not
// part of the hash input.
func DeriveAddress(publicKey []byte) string {
	input := publicKey
	if len(input) == 65 && input[0] == 4 {
		input = input[1:]
	}
	hash := crypto.Keccak256(input)
	return common.BytesToAddress(hash[12:]).Hex()
}
