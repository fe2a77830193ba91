package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"odesli/internal/core"
	httpserver "odesli/internal/http"
	"odesli/internal/i18n"
	"odesli/internal/render"
	"odesli/pkg/musiclink"
	"odesli/pkg/odesli"
)

func newGetURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-url <url>",
		Short: "Look up a song or album by its URL on any supported platform",
		Long: `Look up a song or album by its URL on any supported platform.

The argument may also be a pasted share message; the first link in it is used.`,
		Example: "  odesli get-url https://open.spotify.com/track/0Jcij1eWd5bDMU5iPbxe2i",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, core.NewURLLookup(musiclink.ExtractURL(args[0])))
		},
	}
}

func newGetIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get-id <id> <platform> <entity-type>",
		Short:   "Look up a song or album by its ID on a given platform",
		Example: "  odesli get-id 1443109064 itunes album",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup, err := core.NewIDLookup(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return runLookup(cmd, lookup)
		},
		ValidArgsFunction: completeGetIDArgs,
	}
}

// completeGetIDArgs completes the platform and entity-type positions.
func completeGetIDArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	var values []string
	switch len(args) {
	case 1:
		for _, platform := range odesli.Platforms() {
			values = append(values, platform.String())
		}
	case 2:
		for _, entityType := range odesli.EntityTypes() {
			values = append(values, entityType.String())
		}
	}
	return values, cobra.ShellCompDirectiveNoFileComp
}

// runLookup performs lookup and prints the outcome. Lookup failures are
// reported on the output streams and do not fail the command.
func runLookup(cmd *cobra.Command, lookup *core.Lookup) error {
	client, err := newOdesliClient(nil)
	if err != nil {
		return err
	}

	localizer := i18n.NewLocalizer(config.Output.Language)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	logger.Debug("Looking up links",
		zap.String("mode", lookup.Mode()),
		zap.String("endpoint", client.Endpoint()))

	result, err := lookup.Do(cmd.Context(), client)
	if err != nil {
		logger.Debug("Lookup failed", zap.Error(err))
		return render.Error(stdout, stderr, err, config.Output.JSON, localizer)
	}

	if config.Output.JSON {
		return render.JSON(stdout, result)
	}
	if err := render.Input(stdout, lookup, localizer); err != nil {
		return err
	}
	return render.Human(stdout, result, localizer)
}

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List all platforms supported by Odesli",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.Platforms(cmd.OutOrStdout(), i18n.NewLocalizer(config.Output.Language))
		},
	}
}

func newCompletionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "generate-completions <shell>",
		Short:     "Generate shell completions (bash, zsh, fish, powershell)",
		Example:   "  odesli generate-completions zsh > \"${fpath[1]}/_odesli\"",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve lookups over HTTP with health checks and Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	metrics := httpserver.NewMetrics()

	client, err := newOdesliClient(metrics)
	if err != nil {
		return err
	}

	server := httpserver.NewServer(&config.Server, logger.Named("http"), client, metrics)

	logger.Info("Starting odesli server",
		zap.String("endpoint", client.Endpoint()),
		zap.Bool("api_key", config.Odesli.APIKey != ""),
		zap.String("http_addr", fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start(gCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("odesli server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("odesli server stopped gracefully")
	return nil
}
