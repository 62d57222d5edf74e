package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/coin-transfer/internal/model"
)

// ErrInvalidPassword is returned when the key file cannot be opened with the given password
var ErrInvalidPassword = errors.New("invalid password")

// DecryptKeyFile reads and decrypts a key file
// password must be []byte for security (caller should zero it after use)
func DecryptKeyFile(filePath string, password []byte) (*model.CWTFile, *model.WalletData, error) {
	cwtFile, err := ReadKeyFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	// Decode salt, nonce and ciphertext
	salt, err := base64.StdEncoding.DecodeString(cwtFile.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(cwtFile.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cwtFile.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aesGCM, err := newGCM(password, salt)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", model.ErrConfiguration, ErrInvalidPassword)
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var walletData model.WalletData
	if err := json.Unmarshal(plaintext, &walletData); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal wallet data: %w", err)
	}

	return cwtFile, &walletData, nil
}

// ReadKeyFile reads the key file envelope (without decryption)
func ReadKeyFile(filePath string) (*model.CWTFile, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read key file: %w", model.ErrIO, err)
	}
	if len(fileData) == 0 {
		return nil, fmt.Errorf("%w: key file is empty", model.ErrIO)
	}

	fileData = bytes.TrimPrefix(fileData, utf8BOM)

	var cwtFile model.CWTFile
	if err := json.Unmarshal(fileData, &cwtFile); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal key file: %w", model.ErrIO, err)
	}

	return &cwtFile, nil
}
