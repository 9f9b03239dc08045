package solana

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlexZinkM/wallet-session/internal/crypto"
	"github.com/AlexZinkM/wallet-session/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	networkSolana = "solana"
)

// ErrKeyMismatch is returned when a decrypted private key does not belong to the stored address
var ErrKeyMismatch = errors.New("private key does not match address")

// Keystore creates Solana accounts and keeps each one encrypted in its own .cwt file.
// Files are named by the SHA-256 of the account name; the name itself is kept in the file
// header, so any display name (spaces, non-ASCII) maps to a plain file name inside dir.
type Keystore struct {
	dir    string
	params crypto.Params
	logger *zap.Logger
}

// Option configures a Keystore
type Option func(*Keystore)

// WithScryptParams overrides the scrypt cost of new wallet files
func WithScryptParams(params crypto.Params) Option {
	return func(k *Keystore) {
		k.params = params
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(k *Keystore) {
		k.logger = logger
	}
}

// NewKeystore creates a Keystore rooted at dir, creating the directory if needed.
func NewKeystore(dir string, opts ...Option) (*Keystore, error) {
	if dir == "" {
		return nil, errors.New("keystore directory not set")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create keystore directory: %w", err)
	}

	k := &Keystore{
		dir:    dir,
		params: crypto.DefaultParams,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// CreateKey derives a key pair from the seed phrase (or generates one if the phrase is empty),
// encrypts it with the password and saves it in the account's .cwt file.
func (k *Keystore) CreateKey(ctx context.Context, req model.CreateKeyRequest) (*model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filePath, err := k.accountPath(req.Account)
	if err != nil {
		return nil, err
	}

	// Check file existence before doing the expensive work
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return nil, &crypto.FileExistsError{Path: filePath}
	}

	privateKey := derivePrivateKey(req.SeedPhrase)
	defer clear(privateKey)

	address := privateKey.PublicKey().String()

	qrCode, err := generateQRCode(address)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	createdAt := time.Now().UTC()
	walletData := &model.WalletData{
		PrivateKey: privateKey,
		CreatedAt:  createdAt.Format(time.RFC3339),
	}

	// scrypt is the slow part; do not start it for an abandoned attempt
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	password := []byte(req.Password)
	defer clear(password) // Always clear password from memory

	header := model.CWTFile{
		Network: networkSolana,
		Name:    req.Account,
		Address: address,
		QR:      qrCode,
	}
	if err := crypto.EncryptWallet(filePath, header, walletData, password, k.params); err != nil {
		return nil, fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	k.logger.Info("account created",
		zap.String("account", req.Account),
		zap.String("address", address),
	)

	return &model.Account{
		Name:      req.Account,
		Address:   address,
		QR:        qrCode,
		CreatedAt: createdAt.Truncate(time.Second),
	}, nil
}

// Unlock checks that password opens the account's wallet file and that the stored key
// matches the stored address.
// password must be []byte for security (caller should zero it after use)
func (k *Keystore) Unlock(name string, password []byte) error {
	filePath, err := k.accountPath(name)
	if err != nil {
		return err
	}

	cwtFile, walletData, err := crypto.DecryptWallet(filePath, password)
	if err != nil {
		return fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(walletData.PrivateKey) // Always clear private key from memory

	if cwtFile.Name != name {
		return fmt.Errorf("wallet file belongs to account %q", cwtFile.Name)
	}

	if len(walletData.PrivateKey) != 64 {
		return fmt.Errorf("invalid private key length")
	}

	address, err := solana.PublicKeyFromBase58(cwtFile.Address)
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}

	if !solana.PrivateKey(walletData.PrivateKey).PublicKey().Equals(address) {
		return ErrKeyMismatch
	}
	return nil
}

// accountPath maps an account name to its wallet file
func (k *Keystore) accountPath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("invalid account name %q", name)
	}
	sum := sha256.Sum256([]byte(name))
	return filepath.Join(k.dir, hex.EncodeToString(sum[:])+crypto.FileExt), nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
