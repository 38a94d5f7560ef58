package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"containermap/internal/db"
	"containermap/internal/events"
	"containermap/internal/migrate"
)

// openEvents opens and migrates the workspace audit database.
func openEvents(ctx context.Context, workspace string) (*sql.DB, error) {
	conn, err := db.Open(db.Path(workspace))
	if err != nil {
		return nil, err
	}
	if err := migrate.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate %s: %w", db.Path(workspace), err)
	}
	return conn, nil
}

func eventsCmd() *cobra.Command {
	ev := &cobra.Command{Use: "events", Short: "Inspect recorded mapping events"}
	ev.AddCommand(eventsListCmd())
	return ev
}

func eventsListCmd() *cobra.Command {
	var evtType string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mapping events recorded with --events",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openEvents(cmd.Context(), viper.GetString("workspace"))
			if err != nil {
				return err
			}
			defer conn.Close()
			evts, err := events.Writer{DB: conn}.List(cmd.Context(), evtType, limit)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(evts)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Time", "Type", "Barcode", "Reused"})
			for _, e := range evts {
				reused := ""
				if v, ok := e.Payload["top_container_reused"].(bool); ok {
					reused = fmt.Sprint(v)
				}
				tw.AppendRow(table.Row{e.ID, e.TS, e.Type, e.EntityID, reused})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&evtType, "type", "", "only events of this type, e.g. mapping.rejected")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events")
	return cmd
}
