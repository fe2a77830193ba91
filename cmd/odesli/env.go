package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const defaultEnvExamplePath = ".env.example"

func newEnvExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-env-example",
		Short: "Write a .env.example file documenting every setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			return generateEnvExample(cmd, output)
		},
	}
	cmd.Flags().StringP("output", "o", defaultEnvExamplePath, `file to write ("-" for stdout)`)
	return cmd
}

func generateEnvExample(cmd *cobra.Command, path string) error {
	content := generateEnvExampleContent(cmd.Root())

	if path == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Generated %s\n", path)
	return nil
}

func generateEnvExampleContent(root *cobra.Command) string {
	var content strings.Builder

	content.WriteString("# =============================================================================\n")
	content.WriteString("# odesli Configuration\n")
	content.WriteString("# =============================================================================\n")
	content.WriteString("#\n")
	content.WriteString("# Copy this file to .env and update with your values\n")
	content.WriteString("# All environment variables have CLI flag equivalents (use --help to see them)\n")
	content.WriteString("#\n")
	content.WriteString("# Format: " + envPrefix + "_<SETTING>=value\n")
	content.WriteString("# CLI equivalent: --<setting>\n")
	content.WriteString("#\n\n")

	writeEnvSection(&content, root, "Odesli API",
		"api-key", "api-version", "base-url", "user-country", "song-if-single", "timeout")
	writeEnvSection(&content, root, "Output", "json", "language")
	writeEnvSection(&content, root, "HTTP Server (serve)", "server-host", "server-port")
	writeEnvSection(&content, root, "Logging", "log-level", "log-format")

	return content.String()
}

func writeEnvSection(content *strings.Builder, root *cobra.Command, title string, flagNames ...string) {
	content.WriteString("# -----------------------------------------------------------------------------\n")
	fmt.Fprintf(content, "# %s\n", title)
	content.WriteString("# -----------------------------------------------------------------------------\n")

	for _, name := range flagNames {
		f := root.PersistentFlags().Lookup(name)
		if f == nil {
			continue
		}
		fmt.Fprintf(content, "# %s (CLI: --%s)\n", f.Usage, name)
		fmt.Fprintf(content, "%s=%s\n", flagToEnvVar(name), f.DefValue)
	}
	content.WriteString("\n")
}

func flagToEnvVar(flagName string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}
