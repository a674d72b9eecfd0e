package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/loanboard/cms/internal/auth"
)

func init() { //nolint: gochecknoinits
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "Subject (sub claim) of the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", auth.DefaultTTL, "Token lifetime")

	rootCmd.AddCommand(tokenCmd)
}

var (
	tokenSubject string
	tokenTTL     time.Duration

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Print an admin bearer token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := auth.IssueToken(cfg.JWTSecret, tokenSubject, tokenTTL)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
)
