package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Sign in with a bearer token issued by the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := deps.Session.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as user %s\n", session.User.ID)
			return nil
		},
	}
}

func logoutCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}
