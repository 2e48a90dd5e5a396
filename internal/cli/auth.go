package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/session"
	"github.com/sandeepkv93/todocal/internal/state"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" && email != "" {
				password = app.readLine(cmd, "Password: ")
			}
			user, err := app.session.Login(cmd.Context(), email, password)
			if err != nil {
				return app.fail(cmd, err, i18n.MsgLoginFailed)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgLoginSuccess))
			fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgGreeting, "Name", user.DisplayName()))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted on stdin when omitted)")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var form session.RegisterForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if form.Password == "" {
				form.Password = app.readLine(cmd, "Password: ")
			}
			if form.PasswordConfirm == "" {
				form.PasswordConfirm = app.readLine(cmd, "Confirm password: ")
			}
			user, err := app.session.Register(cmd.Context(), form)
			if err != nil {
				return app.fail(cmd, err, i18n.MsgRegisterFailed)
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgRegisterSuccess))
			fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgGreeting, "Name", user.DisplayName()))
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&form.Username, "username", "", "Username")
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&form.Password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&form.PasswordConfirm, "password-confirm", "", "Password again (prompted when omitted)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), app.catalog.T(i18n.MsgLogoutSuccess))
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.signedIn(cmd)
			if err != nil {
				return err
			}
			if app.JSON {
				return writeJSON(cmd, st.User)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", st.User.DisplayName(), st.User.Email)
			if exp, ok := app.session.TokenExpiry(); ok {
				fmt.Fprintf(out, "token expires %s\n", app.catalog.FormatDateTime(exp))
			}
			return nil
		},
	}
}

// signedIn confirms the stored token against the profile endpoint and
// returns a signed-in state with empty lists.
func (app *App) signedIn(cmd *cobra.Command) (*state.State, error) {
	user, err := app.session.CheckAuthStatus(cmd.Context())
	if err != nil {
		if !errors.Is(err, session.ErrNoToken) {
			fmt.Fprintln(cmd.ErrOrStderr(), app.catalog.T(i18n.MsgSessionExpired))
		}
		return nil, writeErr(cmd, fmt.Errorf("%w: run `todocal login` first", ErrNotSignedIn))
	}
	st := state.New()
	st.SignIn(user)
	return st, nil
}

// signedInWithLists also loads both lists, failing when either load fails.
func (app *App) signedInWithLists(cmd *cobra.Command) (*state.State, error) {
	st, err := app.signedIn(cmd)
	if err != nil {
		return nil, err
	}
	if err := app.resources.Refresh(cmd.Context(), st); err != nil {
		return nil, app.fail(cmd, err, i18n.MsgGenericError)
	}
	return st, nil
}

func (app *App) readLine(cmd *cobra.Command, prompt string) string {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	if app.in == nil {
		app.in = bufio.NewReader(cmd.InOrStdin())
	}
	line, _ := app.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
