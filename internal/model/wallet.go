package model

import "time"

// CWTFile represents .cwt file structure
type CWTFile struct {
	Network    string `json:"network"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	ScryptN    int    `json:"scryptN,omitempty"` // 0 means the default cost
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // 64 bytes ed25519 key (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}

// Account is a named identity backed by a key pair stored in the keystore.
// It never carries private key material.
type Account struct {
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	QR        string    `json:"QR,omitempty"` // base64 PNG of the address
	CreatedAt time.Time `json:"createdAt"`
}
