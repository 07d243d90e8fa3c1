// Package useraccount loads the CLI's signing key from the local keystore
// wallet under the user's config directory.
package useraccount

import (
	"bufio"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/term"
)

// WalletPath is the wallet location relative to the xdg config root.
const WalletPath = "deadswitch/wallet.json"

type UserAccount struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

// Load decrypts the wallet and returns the signing key.
func Load() (*UserAccount, error) {
	path, err := xdg.ConfigFile(WalletPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wallet path: %w", err)
	}

	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet %s: %w", path, err)
	}

	password, err := ReadPassword(false)
	if err != nil {
		return nil, err
	}

	key, err := keystore.DecryptKey(encrypted, password)
	if err != nil {
		return nil, fmt.Errorf("failed to unlock wallet: %w", err)
	}

	return &UserAccount{
		Address:    crypto.PubkeyToAddress(key.PrivateKey.PublicKey),
		PrivateKey: key.PrivateKey,
	}, nil
}

// ReadPassword resolves the wallet password. WALLET_PASSWORD wins; an
// interactive terminal gets a hidden prompt, asked twice when confirm is
// set; otherwise a single line is read from piped stdin.
func ReadPassword(confirm bool) (string, error) {
	if password, ok := os.LookupEnv("WALLET_PASSWORD"); ok {
		return password, nil
	}

	if term.IsTerminal(int(syscall.Stdin)) {
		password, err := promptHidden("Enter wallet password: ")
		if err != nil {
			return "", err
		}
		if confirm {
			again, err := promptHidden("Confirm password: ")
			if err != nil {
				return "", err
			}
			if password != again {
				return "", errors.New("passwords did not match")
			}
		}
		return password, nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptHidden(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
