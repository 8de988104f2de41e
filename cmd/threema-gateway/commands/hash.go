package commands

import (
	"github.com/spf13/cobra"

	gateway "github.com/threema-gateway/client-go"
)

func hashCmd(a *app) *cobra.Command {
	var email, phone string

	cmd := &cobra.Command{
		Use:   "hash (-e <email> | -p <phone>)",
		Short: "Print the identity hash of an email address or phone number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := gateway.HashFromFlags(email, phone)
			if err != nil {
				return err
			}
			sum, err := sel.Hex()
			if err != nil {
				return err
			}
			return a.println(sum)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number")
	return cmd
}
