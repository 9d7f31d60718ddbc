package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/migration"
)

var (
	migrateDryRun bool

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações pendentes do banco",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if migrateDryRun {
				pending, err := migration.Pending(a.conn.DB.DB, a.cfg.Database.Driver)
				if err != nil {
					return err
				}
				for _, id := range pending {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}

			n, err := a.migrate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d migrações aplicadas\n", n)
			return nil
		},
	}
)

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "apenas lista as migrações pendentes")
}
