package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigbench/internal/app"
	"sigbench/internal/crypto"
	"sigbench/internal/util/memzero"
)

func keygenCmd(cfg *app.Config) *cobra.Command {
	var exchange bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a new key pair (nothing is written to disk)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commandLogger(cmd, cfg)

			var (
				kind      string
				pub, priv []byte
			)
			if exchange {
				kp, err := crypto.NewExchangeKeyPair()
				if err != nil {
					return err
				}
				kind, pub, priv = "x25519", kp.Public[:], kp.Private[:]
			} else {
				kp, err := crypto.NewSigningKeyPair()
				if err != nil {
					return err
				}
				kind, pub, priv = "ed25519", kp.Public[:], kp.Private[:]
			}
			defer memzero.Zero(priv)

			fp := crypto.Fingerprint(pub)
			logger.WithField("fingerprint", fp).Debug("Generated " + kind + " key pair")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Type: %s\n", kind)
			fmt.Fprintf(out, "PublicKey: %s\n", crypto.EncodeBase64(pub))
			fmt.Fprintf(out, "PublicKeyHex: %s\n", crypto.ToHex(pub))
			fmt.Fprintf(out, "SecretKey: %s\n", crypto.EncodeBase64(priv))
			fmt.Fprintf(out, "Fingerprint: %s\n", fp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&exchange, "exchange", false, "Generate an X25519 key-exchange pair instead of an Ed25519 signing pair")
	return cmd
}
