package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	gateway "github.com/threema-gateway/client-go"
)

// Key files hold one hex key and a trailing newline.
const (
	privateKeyPerm os.FileMode = 0o600
	publicKeyPerm  os.FileMode = 0o644
)

func readPrivateKey(path string) (gateway.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gateway.PrivateKey{}, fmt.Errorf("read private key: %w", err)
	}
	key, err := gateway.DecodePrivateKey(strings.TrimSpace(string(data)))
	if err != nil {
		return gateway.PrivateKey{}, fmt.Errorf("private key %s: %w", path, err)
	}
	return key, nil
}

func readPublicKey(path string) (gateway.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gateway.PublicKey{}, fmt.Errorf("read public key: %w", err)
	}
	key, err := gateway.DecodePublicKey(strings.TrimSpace(string(data)))
	if err != nil {
		return gateway.PublicKey{}, fmt.Errorf("public key %s: %w", path, err)
	}
	return key, nil
}

// writeKeyFile sets perm before writing, also when the file already exists.
func writeKeyFile(path, hexKey string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	if err := f.Chmod(perm); err != nil {
		f.Close()
		return fmt.Errorf("write key file: %w", err)
	}
	if _, err := f.WriteString(hexKey + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("write key file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

func generateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <private_key_file> <public_key_file>",
		Short: "Generate a new key pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, pub, err := gateway.GenerateKeyPair()
			if err != nil {
				return err
			}
			defer priv.Wipe()

			if err := writeKeyFile(args[0], priv.Hex(), privateKeyPerm); err != nil {
				return err
			}
			if err := writeKeyFile(args[1], pub.Hex(), publicKeyPerm); err != nil {
				return err
			}
			a.logger.Debug().Str("public_key", pub.Hex()).Msg("generated key pair")
			return nil
		},
	}
}

func deriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "derive <private_key_file>",
		Short: "Print the public key of a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := readPrivateKey(args[0])
			if err != nil {
				return err
			}
			defer priv.Wipe()

			pub, err := gateway.DerivePublicKey(priv[:])
			if err != nil {
				return err
			}
			return a.println(pub.Hex())
		},
	}
}
