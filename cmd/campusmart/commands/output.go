package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campusmart/internal/domain"
)

// table writes tab-separated rows under header, aligned.
func table(w io.Writer, header string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

func amount(v float64) string { return fmt.Sprintf("%.2f", v) }

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// sessionUser returns the logged-in user or domain.ErrAuthenticationRequired.
func sessionUser() (domain.User, error) {
	u, ok := wire.Store.CurrentUser()
	if !ok {
		return domain.User{}, fmt.Errorf("%w: run campusmart login <user>", domain.ErrAuthenticationRequired)
	}
	return u, nil
}

// userOrSession returns the --user flag value or, when unset, the session user id.
func userOrSession(cmd *cobra.Command) (string, error) {
	if id, _ := cmd.Flags().GetString("user"); id != "" {
		return id, nil
	}
	u, err := sessionUser()
	if err != nil {
		return "", err
	}
	return u.ID, nil
}
