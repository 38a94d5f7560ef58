package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"containermap/internal/domain"
	"containermap/internal/record"
	"containermap/internal/repo"
)

func storeCmd() *cobra.Command {
	st := &cobra.Command{Use: "store", Short: "Inspect the lookup store"}
	st.AddCommand(storeListCmd())
	st.AddCommand(storeShowCmd())
	return st
}

func storeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List top containers and container profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e env) error {
				tcs := e.Repo.TopContainers()
				profiles := e.Repo.ContainerProfiles()
				if viper.GetBool("json") {
					return printJSON(map[string]any{"top_containers": tcs, "container_profiles": profiles})
				}
				tcRecords := make([]*record.Record, len(tcs))
				for i, tc := range tcs {
					tcRecords[i] = tc.Record
				}
				profileRecords := make([]*record.Record, len(profiles))
				for i, p := range profiles {
					profileRecords[i] = p.Record
				}
				renderRecords("Top containers", domain.TopContainerSchema, tcRecords)
				renderRecords("Container profiles", domain.ContainerProfileSchema, profileRecords)
				return nil
			})
		},
	}
}

func storeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored top container or container profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e env) error {
				if tc, err := e.Repo.GetTopContainer(args[0]); err == nil {
					if viper.GetBool("json") {
						return printJSON(tc)
					}
					renderRecord("Top container", tc.Record)
					return nil
				} else if !errors.Is(err, repo.ErrNotFound) {
					return err
				}
				p, err := e.Repo.GetContainerProfile(args[0])
				if err != nil {
					return fmt.Errorf("record %s: %w", args[0], err)
				}
				if viper.GetBool("json") {
					return printJSON(p)
				}
				renderRecord("Container profile", p.Record)
				return nil
			})
		},
	}
}
