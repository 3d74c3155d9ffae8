package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"trial-shop/utils"
)

func newAdminKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "admin-key <key>",
		Short: "Print the ADMIN_KEY_HASH value for a researcher key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := utils.HashAdminKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
