package config

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"golang.org/x/term"
)

// PromptForPassword prompts for the key file password in the terminal.
// The password is read without echoing. Caller must zero the returned slice after use.
func PromptForPassword() ([]byte, error) {
	return promptHidden("Enter key file password: ")
}

// PromptForNewPassword asks for a password twice and checks both entries match.
func PromptForNewPassword() ([]byte, error) {
	first, err := promptHidden("New key file password: ")
	if err != nil {
		return nil, err
	}
	second, err := promptHidden("Repeat password: ")
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)

	if string(first) != string(second) {
		clear(first)
		return nil, fmt.Errorf("%w: passwords do not match", model.ErrConfiguration)
	}
	return first, nil
}

func promptHidden(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("%w: stdin is not a terminal, run interactively to enter password", model.ErrConfiguration)
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: password cannot be empty", model.ErrConfiguration)
	}

	password := make([]byte, len(raw))
	copy(password, raw)
	clear(raw)
	return password, nil
}
