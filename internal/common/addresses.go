package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/aptos-labs/aptos-go-sdk"
)

// ReadAddressFile reads a line delimited address list. Blank lines are skipped,
// order and duplicates are kept.
func ReadAddressFile(filePath string) ([]aptos.AccountAddress, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read address file: %w", model.ErrIO, err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	return ParseAddresses(string(fileData))
}

// ParseAddresses parses newline separated addresses
func ParseAddresses(content string) ([]aptos.AccountAddress, error) {
	lines := strings.Split(content, "\n")
	addresses := make([]aptos.AccountAddress, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		address, err := ParseAddress(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		addresses = append(addresses, address)
	}

	return addresses, nil
}

// ParseAddress parses a hex account address, with or without 0x prefix
func ParseAddress(s string) (aptos.AccountAddress, error) {
	var address aptos.AccountAddress
	if err := address.ParseStringRelaxed(s); err != nil {
		return aptos.AccountAddress{}, fmt.Errorf("%w: invalid address %q: %w", model.ErrValidation, s, err)
	}
	return address, nil
}
