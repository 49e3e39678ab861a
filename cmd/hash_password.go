package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-mohitbeniwal/mobility/config"
	"github.com/dev-mohitbeniwal/mobility/secret"
)

// hashPasswordCmd prints the stored form of an admin password, for seeding
// the admins collection.
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash an admin password with the configured pepper",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hasher := secret.NewPasswordHasher(config.GetString("password.pepper"), config.GetInt("password.cost"))
		hash, err := hasher.Hash(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
