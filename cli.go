package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"calc-api/config"
	"calc-api/service"
)

func newRootCmd() *cobra.Command {
	var configPath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	root := &cobra.Command{
		Use:           "calc-api",
		Short:         "Financial, health and math calculators over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(serveCmd, &cobra.Command{
		Use:   "tools",
		Short: "List every calculator and its endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTools(cmd.OutOrStdout(), service.Catalog())
		},
	})

	return root
}

func printTools(out io.Writer, tools []service.Tool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tENDPOINT\tFIELDS")
	for _, t := range tools {
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\n", t.Name, t.Category, t.Method, t.Path, strings.Join(t.Fields, ", "))
	}
	return tw.Flush()
}
