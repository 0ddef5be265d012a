package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solmarket/marketplace-client/model"
)

func profileCmd(deps *Deps) *cobra.Command {
	profileRoot := &cobra.Command{
		Use:   "profile",
		Short: "Manage your account profile",
	}
	profileRoot.AddCommand(profileUpdateCmd(deps))
	return profileRoot
}

func profileUpdateCmd(deps *Deps) *cobra.Command {
	var (
		email    string
		nickname string
		password string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update email, nickname and optionally the password",
		Long: "Update the account profile. A new password must be at least 8\n" +
			"characters with one lowercase, one uppercase, one digit and one\n" +
			"symbol. The check here is advisory; the server validates again.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := sessionContext(cmd.Context(), deps)

			user, err := deps.Profile.SaveProfile(ctx, &model.ProfileUpdateRequest{
				Email:    email,
				Nickname: nickname,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Profile saved: @%s <%s>\n", user.Nickname, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&nickname, "nickname", "", "display nickname")
	cmd.Flags().StringVar(&password, "password", "", "new password (optional)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("nickname")

	return cmd
}
