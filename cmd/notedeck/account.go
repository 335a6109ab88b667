package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/notedeck/cmd"
	"github.com/cristianoliveira/notedeck/internal/colors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword reads a line from the terminal without echo. Tests replace it.
var readPassword = term.ReadPassword

// promptPassword prints label to w and reads a password from stdin.
func promptPassword(w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label+": ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

// promptLine reads one line of visible input.
func promptLine(in io.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label+": ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func emailOrPrompt(cmd *cobra.Command, email string) (string, error) {
	if email != "" {
		return email, nil
	}
	return promptLine(cmd.InOrStdin(), cmd.ErrOrStderr(), "Email")
}

// NewSignupCmd creates the signup command.
func NewSignupCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewSignupCmd: open dependency cannot be nil")
	}
	var email string
	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Long: `Create a local account and sign in.

USAGE:
    notedeck signup [--email <email>]

The password is prompted for twice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				email, err := emailOrPrompt(cmd, email)
				if err != nil {
					return err
				}
				pw, err := promptPassword(cmd.ErrOrStderr(), "Password")
				if err != nil {
					return err
				}
				confirm, err := promptPassword(cmd.ErrOrStderr(), "Confirm password")
				if err != nil {
					return err
				}
				session, err := a.auth.Register(cmd.Context(), email, pw, confirm)
				if err != nil {
					return err
				}
				colors.Success("Account created. Signed in as", session.Email)
				return nil
			})
		},
	}
	signupCmd.Flags().StringVar(&email, "email", "", "Account email")
	return signupCmd
}

// NewLoginCmd creates the login command.
func NewLoginCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewLoginCmd: open dependency cannot be nil")
	}
	var email string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Long: `Sign in to a local account. A running terminal UI picks up the new session.

USAGE:
    notedeck login [--email <email>]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				email, err := emailOrPrompt(cmd, email)
				if err != nil {
					return err
				}
				pw, err := promptPassword(cmd.ErrOrStderr(), "Password")
				if err != nil {
					return err
				}
				session, err := a.auth.Login(cmd.Context(), email, pw)
				if err != nil {
					return err
				}
				colors.Success("Signed in as", session.Email)
				return nil
			})
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "Account email")
	return loginCmd
}

// NewLogoutCmd creates the logout command.
func NewLogoutCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewLogoutCmd: open dependency cannot be nil")
	}
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Long:  `Sign out and remove the stored session.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				if err := a.auth.Logout(); err != nil {
					return err
				}
				colors.Success("Signed out")
				return nil
			})
		},
	}
}

// NewPasswdCmd creates the passwd command. It goes through the workspace so
// the form rules match the settings pane of the terminal UI.
func NewPasswdCmd(open appOpener) *cobra.Command {
	if open == nil {
		panic("NewPasswdCmd: open dependency cannot be nil")
	}
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change your password",
		Long:  `Change the password of the signed in account.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), open, func(a *app) error {
				ws, err := a.workspace(cmd.Context())
				if err != nil {
					return err
				}
				var values [3]string
				for i, label := range []string{"Current password", "New password", "Confirm new password"} {
					if values[i], err = promptPassword(cmd.ErrOrStderr(), label); err != nil {
						return err
					}
				}
				if err := drive(ws, ws.ChangePassword(values[0], values[1], values[2])); err != nil {
					return err
				}
				colors.Success(ws.Toast().Message)
				return nil
			})
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(
		NewSignupCmd(openApp),
		NewLoginCmd(openApp),
		NewLogoutCmd(openApp),
		NewPasswdCmd(openApp),
	)
}
