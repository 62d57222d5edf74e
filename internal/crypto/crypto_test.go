package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.cwt")
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	err := EncryptKeyFile(path, "testnet", "0xabc", "qr", &model.WalletData{PrivateKey: seed, CreatedAt: "now"}, []byte("secret"))
	require.NoError(t, err)

	envelope, err := ReadKeyFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", envelope.Address)
	assert.Equal(t, "testnet", envelope.Network)

	_, walletData, err := DecryptKeyFile(path, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, seed, walletData.PrivateKey)

	_, _, err = DecryptKeyFile(path, []byte("wrong"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestEncryptKeyFileRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.cwt")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	err := EncryptKeyFile(path, "testnet", "0x1", "", &model.WalletData{}, []byte("pw"))
	assert.True(t, IsFileExistsError(err))
}

func TestEncryptKeyFileExtension(t *testing.T) {
	err := EncryptKeyFile(filepath.Join(t.TempDir(), "main.json"), "testnet", "0x1", "", &model.WalletData{}, []byte("pw"))
	assert.ErrorIs(t, err, model.ErrValidation)
}
