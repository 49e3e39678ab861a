package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-mohitbeniwal/mobility/config"
	"github.com/dev-mohitbeniwal/mobility/secret"
)

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Encode or decode vehicle QR tokens",
}

var qrEncodeCmd = &cobra.Command{
	Use:   "encode <vehicleId>",
	Short: "Print the QR token for a vehicle id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := codecFromConfig()
		if err != nil {
			return err
		}
		token, err := codec.Encode(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var qrDecodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Print the vehicle id a QR token carries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := codecFromConfig()
		if err != nil {
			return err
		}
		vehicleID, err := codec.Decode(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), vehicleID)
		return nil
	},
}

func init() {
	qrCmd.AddCommand(qrEncodeCmd)
	qrCmd.AddCommand(qrDecodeCmd)
}

func codecFromConfig() (*secret.Codec, error) {
	return secret.NewCodec(
		config.GetString("codec.secret"),
		config.GetString("codec.keySalt"),
		config.GetString("codec.salt"),
		config.GetString("codec.pepper"),
	)
}
