package coin

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/AlexZinkM/coin-transfer/internal/config"
	"github.com/AlexZinkM/coin-transfer/internal/crypto"
	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/aptos-labs/aptos-go-sdk"
	aptoscrypto "github.com/aptos-labs/aptos-go-sdk/crypto"
	"github.com/skip2/go-qrcode"
)

// GenerateKeyFile generates a new Ed25519 account and saves it to an encrypted key file.
// Returns the generated address on success.
// password must be []byte for security (caller should zero it after use)
func GenerateKeyFile(filePath, network string, password []byte) (address string, err error) {
	if _, err := config.ResolveNetwork(network, ""); err != nil {
		return "", err
	}

	key, err := aptoscrypto.GenerateEd25519PrivateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}

	seed := key.Bytes()
	defer clear(seed)

	account, err := aptos.NewAccountFromSigner(key)
	if err != nil {
		return "", fmt.Errorf("failed to derive account: %w", err)
	}
	address = account.Address.String()

	qrCode, err := generateQRCode(address)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	walletData := &model.WalletData{
		PrivateKey: seed,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}

	if err := crypto.EncryptKeyFile(filePath, network, address, qrCode, walletData, password); err != nil {
		return "", fmt.Errorf("failed to encrypt key file: %w", err)
	}

	return address, nil
}

// generateQRCode generates QR code of address as base64 PNG
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
