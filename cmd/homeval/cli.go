package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goval-community/homeval/internal/config"
	"github.com/goval-community/homeval/internal/identity"
)

type rootOptions struct {
	configFile string
	addr       string
	logLevel   string
	logPath    string
	pprofAddr  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "homeval",
		Short: "Self-hosted goval server",
		Long: `homeval speaks the goval protocol over a websocket at /wsv2/:token and
hosts the services a repl client expects: collaborative editing, shells,
the run output and friends.

Running homeval without a subcommand starts the server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", config.GetConfigPath(), "Configuration file (JSON)")
	root.Flags().StringVar(&opts.addr, "addr", "", "Listen address for the goval websocket (overrides config)")
	root.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error, none")
	root.Flags().StringVar(&opts.logPath, "log-path", "", "Log file (default stderr)")
	root.Flags().StringVar(&opts.pprofAddr, "pprof-addr", "", "Serve /debug/pprof on this address")

	root.AddCommand(newVersionCmd(), newTokenCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the homeval version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "homeval %s\n", version)
		},
	}
}

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <token>",
		Short: "Decode a connection token and print the identity it carries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flag("config").Value.String())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			resolver, err := identity.NewResolver(cfg.Identity.PublicKey)
			if err != nil {
				return err
			}

			if _, err := identity.Parse(args[0]); err != nil {
				return fmt.Errorf("failed to decode token: %w", err)
			}
			info := resolver.Resolve(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "username: %s\n", info.Username)
			fmt.Fprintf(out, "id:       %d\n", info.ID)
			fmt.Fprintf(out, "secure:   %t\n", info.Secure)
			return nil
		},
	}
}
