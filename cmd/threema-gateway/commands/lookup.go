package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	gateway "github.com/threema-gateway/client-go"
)

func lookupCmd(a *app) *cobra.Command {
	var id, email, phone string

	cmd := &cobra.Command{
		Use:   "lookup (-i <id> | -e <email> | -p <phone>)",
		Short: "Look up a Threema ID",
		Long: `Look up a Threema ID by email address or phone number, or check that an ID
exists. Email addresses and phone numbers are hashed before they are sent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criterion, err := gateway.LookupFromFlags(id, email, phone)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			found, err := client.LookupID(cmd.Context(), criterion)
			if err != nil {
				return err
			}
			return a.println(found)
		},
	}
	cmd.Flags().StringVarP(&id, "id", "i", "", "Threema ID")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number")
	return cmd
}

func capabilitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities <id>",
		Short: "List the capabilities of a Threema ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			caps, err := client.Capabilities(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.println(strings.Join(caps, ","))
		},
	}
}

func creditsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "Print the remaining credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			n, err := client.Credits(cmd.Context())
			if err != nil {
				return err
			}
			return a.println(strconv.Itoa(n))
		},
	}
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.println(Version)
		},
	}
}
