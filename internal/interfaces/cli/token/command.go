// Package token mints access tokens for local testing against the API.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecobarangay/wasteops/internal/infrastructure/auth"
	"github.com/ecobarangay/wasteops/internal/infrastructure/config"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
)

var (
	env       string
	accountID uint
	roleName  string
	minutes   int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long: `Issue a signed access token for an account and role using the configured
JWT secret. Intended for development; production tokens come from the identity provider.`,
		Example: `  wasteops token --account 20 --role staff`,
		RunE:    run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().UintVar(&accountID, "account", 0, "Account id (required)")
	cmd.Flags().StringVar(&roleName, "role", "", "Role: admin, staff, operator or household (required)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Lifetime in minutes (default: auth.jwt.access_exp_minutes)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	role, err := authorization.ParseRole(roleName)
	if err != nil {
		return err
	}

	lifetime := cfg.Auth.JWT.AccessExpMinutes
	if minutes > 0 {
		lifetime = minutes
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, lifetime)
	signed, expiresAt, err := svc.GenerateAccessToken(authorization.Actor{AccountID: accountID, Role: role})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
