package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"containermap/internal/app"
	"containermap/internal/config"
	"containermap/internal/domain"
	"containermap/internal/engine"
	"containermap/internal/events"
)

// sourceInput collects a source container from a sample, a YAML file and
// --field overrides, applied in that order.
type sourceInput struct {
	sample string
	file   string
	fields map[string]string
}

func (in *sourceInput) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.sample, "sample", "", "start from a named sample in the config")
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "YAML file mapping source field names to values")
	cmd.Flags().StringToStringVar(&in.fields, "field", nil, "source field value, e.g. --field barcode_1=12345")
}

func (in *sourceInput) source(cfg *config.Config) (*domain.SourceContainer, error) {
	if in.sample == "" && in.file == "" && len(in.fields) == 0 {
		return nil, errors.New("no source given; use --sample, --file or --field")
	}
	values := map[string]string{}
	if in.sample != "" {
		s, ok := cfg.Sample(in.sample)
		if !ok {
			return nil, fmt.Errorf("sample %s not found", in.sample)
		}
		for k, v := range s.Fields {
			values[k] = v
		}
	}
	if in.file != "" {
		data, err := os.ReadFile(in.file)
		if err != nil {
			return nil, err
		}
		var fromFile map[string]string
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("invalid source yaml: %w", err)
		}
		for k, v := range fromFile {
			values[k] = v
		}
	}
	for k, v := range in.fields {
		values[k] = v
	}
	return domain.SourceContainerFrom(values)
}

func mapCmd() *cobra.Command {
	var in sourceInput
	var dump bool
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map a source container to a subcontainer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e env) error {
				src, err := in.source(e.Config)
				if err != nil {
					return err
				}
				res, err := e.Engine.Run(src, e.Repo)
				if err != nil {
					return err
				}
				if viper.GetBool("events") {
					if err := appendEvent(cmd.Context(), viper.GetString("workspace"), src, res); err != nil {
						return fmt.Errorf("append event: %w", err)
					}
				}
				if res.Outcome == engine.Rejected {
					if viper.GetBool("json") {
						if err := printJSON(map[string]any{"outcome": res.Outcome, "errors": res.Errors}); err != nil {
							return err
						}
					} else {
						renderErrors(res.Errors)
					}
					return errRejected
				}
				if dump {
					spew.Fdump(os.Stdout, res.Subcontainer)
					return nil
				}
				if viper.GetBool("json") {
					return printJSON(map[string]any{"outcome": res.Outcome, "subcontainer": res.Subcontainer})
				}
				renderGraph(res.Subcontainer)
				return nil
			})
		},
	}
	in.bind(cmd)
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the resulting record graph for debugging")
	return cmd
}

func appendEvent(ctx context.Context, workspace string, src *domain.SourceContainer, res engine.Result) error {
	conn, err := openEvents(ctx, workspace)
	if err != nil {
		return err
	}
	defer conn.Close()
	return events.Writer{DB: conn}.AppendResult(ctx, src, res)
}

func validateCmd() *cobra.Command {
	var in sourceInput
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a source container without mapping it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			src, err := in.source(cfg)
			if err != nil {
				return err
			}
			errs := src.Validate()
			if viper.GetBool("json") {
				if err := printJSON(map[string]any{"valid": len(errs) == 0, "errors": errs}); err != nil {
					return err
				}
			} else if len(errs) == 0 {
				fmt.Println("source container is valid")
			} else {
				renderErrors(errs)
			}
			if len(errs) > 0 {
				return errRejected
			}
			return nil
		},
	}
	in.bind(cmd)
	return cmd
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List mapping rules in application order",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := engine.NewDefault(nil)
			if viper.GetBool("json") {
				return printJSON(e.Descriptions())
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"#", "Rule"})
			for i, r := range e.Rules() {
				tw.AppendRow(table.Row{i + 1, r.Description()})
			}
			tw.Render()
			return nil
		},
	}
}

func samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List sample source containers from the config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cfg.Samples)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Name", "Description", "Valid"})
			for _, s := range cfg.Samples {
				src, err := app.SampleSource(cfg, s.Name)
				if err != nil {
					return err
				}
				tw.AppendRow(table.Row{s.Name, s.Description, len(src.Validate()) == 0})
			}
			tw.Render()
			return nil
		},
	}
}
