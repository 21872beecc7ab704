package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

var (
	signupFirstName string
	signupLastName  string
	signupDOB       string
)

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and cache the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := svc.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", user.UserName, user.FullName())
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <username> <password> <email>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := svc.Signup(cmd.Context(), models.CreateUserRequest{
			UserName:    args[0],
			Password:    args[1],
			Email:       args[2],
			FirstName:   signupFirstName,
			LastName:    signupLastName,
			DateOfBirth: signupDOB,
		})
		if err != nil {
			return err
		}
		fmt.Println("Account created; log in to continue")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the cached session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc.Logout(cmd.Context())
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the cached viewer identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		viewer, err := requireViewer()
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s) <%s> id=%d\n", viewer.UserName, viewer.FullName(), viewer.Email, viewer.UserID)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupFirstName, "first-name", "", "first name")
	signupCmd.Flags().StringVar(&signupLastName, "last-name", "", "last name")
	signupCmd.Flags().StringVar(&signupDOB, "dob", "1990-01-01", "date of birth (YYYY-MM-DD)")
}
