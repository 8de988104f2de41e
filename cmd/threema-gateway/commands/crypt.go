package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	gateway "github.com/threema-gateway/client-go"
)

func encryptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <private_key_file> <public_key_file>",
		Short: "Encrypt a text from stdin, print nonce and box",
		Long: `Encrypt the text read from stdin with the sender's private key for the
recipient's public key. The nonce and box are printed as hex on two lines.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := readPrivateKey(args[0])
			if err != nil {
				return err
			}
			defer priv.Wipe()
			pub, err := readPublicKey(args[1])
			if err != nil {
				return err
			}
			text, err := a.readText()
			if err != nil {
				return err
			}

			nonce, box, err := gateway.EncryptText(text, priv, pub)
			if err != nil {
				return err
			}
			return a.println(gateway.FormatEnvelope(nonce, box))
		},
	}
}

func decryptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <private_key_file> <public_key_file>",
		Short: "Decrypt nonce and box from stdin, print the text",
		Long: `Decrypt a message read from stdin as two hex lines, nonce then box, with the
recipient's private key and the sender's public key.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := readPrivateKey(args[0])
			if err != nil {
				return err
			}
			defer priv.Wipe()
			pub, err := readPublicKey(args[1])
			if err != nil {
				return err
			}

			data, err := io.ReadAll(a.stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			nonce, box, err := gateway.ParseEnvelope(string(data))
			if err != nil {
				return err
			}

			text, err := gateway.ReceiveText(nonce[:], box, priv, pub)
			if err != nil {
				return err
			}
			return a.println(text)
		},
	}
}
