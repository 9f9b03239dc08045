package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlexZinkM/wallet-session/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for local wallet
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) works on phones and desktops alike
	// while keeping brute-force attacks extremely expensive.
	defaultScryptN = 1 << 18
	scryptR        = 8
	scryptP        = 1
	scryptKeyLen   = 32
	saltLen        = 32
	nonceLen       = 12

	FileExt = ".cwt"
)

// Params controls the scrypt cost used when encrypting a wallet.
// The chosen N is written into the file so decryption does not need it.
type Params struct {
	N int
}

// DefaultParams is used for every wallet unless a caller lowers the cost (tests).
var DefaultParams = Params{N: defaultScryptN}

func (p Params) n() int {
	if p.N <= 0 {
		return defaultScryptN
	}
	return p.N
}

// FileExistsError is an error when wallet file already exists and is not empty
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file %s is not empty", filepath.Base(e.Path))
}

// Is makes errors.Is(err, model.ErrAccountExists) match
func (e *FileExistsError) Is(target error) bool {
	return target == model.ErrAccountExists
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// EncryptWallet encrypts wallet data and writes it to .cwt together with the header fields
// of cwtFile (network, name, address, QR). Salt, nonce and ciphertext are filled in here.
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath string, cwtFile model.CWTFile, walletData *model.WalletData, password []byte, params Params) error {
	if filepath.Ext(filePath) != FileExt {
		return errors.New("file must have .cwt extension")
	}

	// Existing non-empty file is never overwritten
	if fileInfo, err := os.Stat(filePath); err == nil {
		if fileInfo.Size() > 0 {
			return &FileExistsError{Path: filePath}
		}
		// an empty placeholder file is replaced
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("failed to remove empty file: %w", err)
		}
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	n := params.n()
	aesGCM, err := newGCM(password, salt, n)
	if err != nil {
		return err
	}

	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	cwtFile.ScryptN = n
	cwtFile.Salt = base64.StdEncoding.EncodeToString(salt)
	cwtFile.Nonce = base64.StdEncoding.EncodeToString(nonce)
	cwtFile.CipherText = base64.StdEncoding.EncodeToString(ciphertext)

	fileData, err := json.MarshalIndent(cwtFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cwt file: %w", err)
	}

	// Add UTF-8 BOM for proper display in Windows
	utf8BOM := []byte{0xEF, 0xBB, 0xBF}
	fileDataWithBOM := append(utf8BOM, fileData...)

	// O_EXCL so two concurrent sign-ups for the same name cannot both write
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return &FileExistsError{Path: filePath}
		}
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := f.Write(fileDataWithBOM); err != nil {
		f.Close()
		os.Remove(filePath)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filePath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// newGCM derives the file key from password and returns the AES-GCM AEAD for it
func newGCM(password, salt []byte, n int) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, n, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
