package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sigbench/internal/app"
	"sigbench/internal/crypto"
	"sigbench/internal/domain"
)

func verifyCmd(cfg *app.Config) *cobra.Command {
	var (
		pubB64, sigB64, msgB64 string
		length                 int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a detached Ed25519 signature",
		Long: `Verify a detached Ed25519 signature. Public key, signature and message
are base64 text; trailing '=' padding is ignored. With --length the decoded
message is zero-padded or truncated to exactly that many bytes first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commandLogger(cmd, cfg)

			rawPub, err := decodeArg("pubkey", pubB64)
			if err != nil {
				return err
			}
			pub, err := domain.ParseEd25519Public(rawPub)
			if err != nil {
				return err
			}
			rawSig, err := decodeArg("signature", sigB64)
			if err != nil {
				return err
			}
			sig, err := domain.ParseSignature(rawSig)
			if err != nil {
				return err
			}
			msg, err := decodeArg("message", msgB64)
			if err != nil {
				return err
			}
			if length < 0 {
				return fmt.Errorf("--length must not be negative")
			}
			if length > 0 {
				fixed := make([]byte, length)
				copy(fixed, msg)
				msg = fixed
			}

			logger.WithField("message-length", len(msg)).Debug("Verifying")
			if err := crypto.VerifyDetached(sig, msg, pub); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Verify failed")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Verify OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&pubB64, "pubkey", "", "Signer public key (base64)")
	cmd.Flags().StringVar(&sigB64, "signature", "", "Detached signature (base64)")
	cmd.Flags().StringVar(&msgB64, "message", "", "Signed message (base64)")
	cmd.Flags().IntVar(&length, "length", 0, "Exact message length in bytes (0 keeps the decoded length)")
	for _, name := range []string{"pubkey", "signature"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func decodeArg(name, s string) ([]byte, error) {
	b, err := crypto.DecodeBase64(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}
