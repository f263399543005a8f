package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/agrirent/internal/access"
	"github.com/me/agrirent/internal/api"
)

// requireView returns a PreRunE that refuses to run the command unless
// the gate renders view for the current session.
func requireView(view string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return checkView(view)
	}
}

func checkView(view string) error {
	sess := gate.Current()
	d := access.Decide(sess, view)
	logger.Debug("view decision", "view", view, "decision", d.String())

	switch d.Outcome {
	case access.Render:
		return nil
	case access.Redirect:
		if d.Target == access.LoginPath {
			return fmt.Errorf("not logged in as %s (run 'agrirent login')", viewRole(view))
		}
		return fmt.Errorf("already logged in as %s (%s); run 'agrirent logout' first",
			sess.User.Username, sess.Role())
	default:
		return fmt.Errorf("unknown view %q", view)
	}
}

// viewRole names the role a scoped view requires.
func viewRole(view string) string {
	switch access.Classify(view) {
	case access.ViewAdmin:
		return "admin"
	case access.ViewCustomer:
		return "customer"
	default:
		return "any user"
	}
}

// checkAPI clears the session when the backend rejects the credential.
func checkAPI(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrUnauthorized) {
		gate.Logout(ctx)
		return fmt.Errorf("%w; session cleared, log in again", err)
	}
	return err
}
