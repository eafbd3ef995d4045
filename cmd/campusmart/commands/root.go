package commands

import (
	"github.com/spf13/cobra"

	"campusmart/internal/app"
)

var (
	home       string
	backend    string
	dsn        string
	passphrase string
	verbose    bool

	wire *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "campusmart",
		Short:        "Campus marketplace store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("backend") {
				cfg.Backend = app.Backend(backend)
			}
			if flags.Changed("dsn") {
				cfg.DSN = dsn
			}
			if flags.Changed("passphrase") {
				cfg.Passphrase = passphrase
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			err := wire.Close()
			wire = nil
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "data dir (default ~/.campusmart)")
	pf.StringVar(&backend, "backend", string(app.BackendFile), "slot storage: file, sealed or sql")
	pf.StringVar(&dsn, "dsn", "", "sql backend DSN: SQLite path or postgres:// URL")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase for the sealed backend")
	pf.BoolVar(&verbose, "verbose", false, "log storage problems to stderr")

	root.AddCommand(
		loginCmd(), logoutCmd(), whoamiCmd(), onboardingCmd(),
		usersCmd(), businessesCmd(), productsCmd(),
		cartCmd(), checkoutCmd(), ordersCmd(),
		reportsCmd(), notificationsCmd(),
	)
	return root
}
