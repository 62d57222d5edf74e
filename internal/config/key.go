package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/AlexZinkM/coin-transfer/internal/crypto"
	"github.com/AlexZinkM/coin-transfer/internal/model"
)

const ed25519KeyPrefix = "ed25519-priv-"

// ed25519SeedLen is the length of an Ed25519 private key seed
const ed25519SeedLen = 32

// ResolvePrivateKey returns the Ed25519 seed from the first source that has one.
// Caller should clear the returned slice after use.
func ResolvePrivateKey(src KeySource) ([]byte, error) {
	if src.PrivateKey != "" {
		return ParsePrivateKeyHex(src.PrivateKey)
	}

	if src.KeyFile != "" {
		password, err := PromptForPassword()
		if err != nil {
			return nil, err
		}
		defer clear(password) // Always clear password from memory

		_, walletData, err := crypto.DecryptKeyFile(src.KeyFile, password)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt key file: %w", err)
		}
		if len(walletData.PrivateKey) != ed25519SeedLen {
			clear(walletData.PrivateKey)
			return nil, fmt.Errorf("%w: invalid private key length in key file", model.ErrConfiguration)
		}
		return walletData.PrivateKey, nil
	}

	if src.EnvKey != "" {
		return ParsePrivateKeyHex(src.EnvKey)
	}

	if src.ProfilePath != "" {
		key, err := ReadProfileKey(src.ProfilePath, src.Profile)
		if err != nil {
			return nil, err
		}
		return ParsePrivateKeyHex(key)
	}

	return nil, fmt.Errorf("%w: no private key", model.ErrConfiguration)
}

// ParsePrivateKeyHex decodes a hex Ed25519 seed, accepting 0x and ed25519-priv- prefixes
func ParsePrivateKeyHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ed25519KeyPrefix)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: private key is not valid hex", model.ErrConfiguration)
	}
	if len(seed) != ed25519SeedLen {
		clear(seed)
		return nil, fmt.Errorf("%w: invalid private key length: expected %d bytes", model.ErrConfiguration, ed25519SeedLen)
	}
	return seed, nil
}
