package solana

import (
	"crypto/ed25519"
	"crypto/sha512"
	"strings"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/crypto/pbkdf2"
)

const (
	seedSalt       = "mnemonic" // BIP39 salt prefix, no passphrase
	seedIterations = 2048
	seedLen        = 64
)

// normalizeSeedPhrase lowercases the phrase and collapses whitespace between words
func normalizeSeedPhrase(seedPhrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(seedPhrase)), " ")
}

// derivePrivateKey returns the ed25519 key for seedPhrase.
// The seed is the BIP39 PBKDF2 stretch of the phrase; its first 32 bytes are the ed25519 seed,
// the same key solana-keygen recovers without a derivation path.
// An empty phrase produces a fresh random key.
// The word list checksum is not verified.
func derivePrivateKey(seedPhrase string) solana.PrivateKey {
	phrase := normalizeSeedPhrase(seedPhrase)
	if phrase == "" {
		return solana.NewWallet().PrivateKey
	}

	seed := pbkdf2.Key([]byte(phrase), []byte(seedSalt), seedIterations, seedLen, sha512.New)
	defer clear(seed)

	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize]))
}
