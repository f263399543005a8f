package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/me/agrirent/internal/access"
	"github.com/me/agrirent/internal/session"
	"github.com/me/agrirent/internal/token"
	"github.com/me/agrirent/pkg/model"
)

// passwordFlags are shared by login and register.
type passwordFlags struct {
	file      string
	fromStdin bool
}

func (p *passwordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.file, "password-file", "", "Read the password from a file")
	cmd.Flags().BoolVar(&p.fromStdin, "password-stdin", false, "Read the password from stdin")
}

func newLoginCmd() *cobra.Command {
	var username string
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Log in to the rental backend",
		Long:    "Exchange a username and password for a session. The session is kept until logout.",
		PreRunE: requireView(access.LoginPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())

			if username == "" {
				var err error
				if username, err = prompt(cmd, in, "Username: "); err != nil {
					return err
				}
			}
			if username == "" {
				return fmt.Errorf("username cannot be empty")
			}

			password, err := readPassword(cmd, in, pw)
			if err != nil {
				return err
			}

			resp, err := client.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			role := model.ParseRole(resp.Role)
			if err := gate.Login(cmd.Context(), resp.Token, resp.Username, role, resp.Name); err != nil {
				if errors.Is(err, session.ErrInvalidLogin) {
					return fmt.Errorf("login failed: backend returned role %q", resp.Role)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", resp.Username, role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted if omitted)")
	pw.register(cmd)
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var req model.RegisterRequest
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create an account",
		PreRunE: requireView(access.RegisterPath),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())

			var err error
			if req.Name == "" {
				if req.Name, err = prompt(cmd, in, "Full name: "); err != nil {
					return err
				}
			}
			if req.Username == "" {
				if req.Username, err = prompt(cmd, in, "Username: "); err != nil {
					return err
				}
			}
			if req.Password, err = readPassword(cmd, in, pw); err != nil {
				return err
			}

			msg, err := client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			fmt.Fprintf(cmd.OutOrStdout(), "Run 'agrirent login -u %s' to sign in.\n", req.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name (prompted if omitted)")
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Username (prompted if omitted)")
	cmd.Flags().StringVar(&req.Role, "role", "customer", "Account role: customer or admin")
	pw.register(cmd)
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			gate.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sess := gate.Current()
			if !sess.IsAuthenticated() {
				fmt.Fprintln(out, "Not logged in.")
				return nil
			}

			fmt.Fprintf(out, "Username:  %s\n", sess.User.Username)
			if sess.User.Name != "" {
				fmt.Fprintf(out, "Name:      %s\n", sess.User.Name)
			}
			fmt.Fprintf(out, "Role:      %s\n", sess.Role())
			fmt.Fprintf(out, "Home:      %s\n", sess.Role().Home())

			// Informational only; the backend decides whether the token is still good.
			info, err := token.Parse(sess.Token)
			switch {
			case err != nil:
				fmt.Fprintln(out, "Token:     opaque")
			case info.Expiry.IsZero():
				fmt.Fprintln(out, "Token:     no expiry")
			case info.IsExpired():
				fmt.Fprintf(out, "Token:     expired at %s\n", info.Expiry.Local().Format(time.RFC1123))
			default:
				fmt.Fprintf(out, "Token:     expires %s (in %s)\n",
					info.Expiry.Local().Format(time.RFC1123), info.Remaining().Round(time.Minute))
			}
			return nil
		},
	}
}

// prompt writes label to stderr and reads one trimmed line.
func prompt(cmd *cobra.Command, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads from --password-file, from stdin with
// --password-stdin, or from the terminal with echo disabled.
func readPassword(cmd *cobra.Command, in *bufio.Reader, pw passwordFlags) (string, error) {
	switch {
	case pw.file != "" && pw.file != "-":
		data, err := os.ReadFile(pw.file)
		if err != nil {
			return "", fmt.Errorf("read password file: %w", err)
		}
		p := strings.TrimRight(string(data), "\r\n")
		if p == "" {
			return "", fmt.Errorf("password file %s is empty", pw.file)
		}
		return p, nil

	case pw.fromStdin || pw.file == "-":
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", fmt.Errorf("read password: %w", err)
		}
		p := strings.TrimRight(line, "\r\n")
		if p == "" {
			return "", fmt.Errorf("password cannot be empty")
		}
		return p, nil
	}

	f, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no terminal available for password prompt (use --password-stdin or --password-file)")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}
	return string(b), nil
}
