package commands

import (
	"github.com/spf13/cobra"

	gateway "github.com/threema-gateway/client-go"
)

func sendSimpleCmd(a *app) *cobra.Command {
	var id, phone, email string

	cmd := &cobra.Command{
		Use:   "send_simple (--to <id> | --phone <phone> | --email <email>)",
		Short: "Send a text from stdin in simple mode",
		Long: `Send the text read from stdin. The gateway encrypts it for the recipient,
who is addressed by exactly one of Threema ID, phone number or email address.
The message ID is printed on success.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := gateway.RecipientFromFlags(id, phone, email)
			if err != nil {
				return err
			}
			text, err := a.readText()
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			msgID, err := gateway.SimpleTextMessage{Recipient: to, Text: text}.Send(cmd.Context(), client)
			if err != nil {
				return err
			}
			return a.println(msgID)
		},
	}
	cmd.Flags().StringVarP(&id, "to", "i", "", "recipient Threema ID")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "recipient phone number")
	cmd.Flags().StringVarP(&email, "email", "e", "", "recipient email address")
	return cmd
}

func sendE2ECmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send_e2e <id> <private_key_file> [public_key_file]",
		Short: "Encrypt a text from stdin and send it end-to-end",
		Long: `Encrypt the text read from stdin with the private key and send the box to
the Threema ID. The recipient's public key is read from public_key_file or,
when omitted, fetched from the gateway. The message ID is printed on success.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := readPrivateKey(args[1])
			if err != nil {
				return err
			}
			defer priv.Wipe()

			msg := gateway.E2ETextMessage{ID: args[0]}
			if len(args) == 3 {
				pub, err := readPublicKey(args[2])
				if err != nil {
					return err
				}
				msg.RecipientKey = &pub
			}

			if msg.Text, err = a.readText(); err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			msgID, err := msg.Send(cmd.Context(), client, priv)
			if err != nil {
				return err
			}
			return a.println(msgID)
		},
	}
}
