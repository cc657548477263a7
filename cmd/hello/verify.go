package main

import (
	"fmt"

	"hellogo/internal/manifest"
	"hellogo/internal/report"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var verifyManifestPath string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Self-check the transcript against the expectations manifest",
	Long: `Rebuild the fixture transcript in-process and compare it line by
line against the expectations manifest (fixture.toml by default).

The harness normally performs this comparison itself between a local and
a remote run; verify lets the fixture be checked standalone.

Examples:
  hello verify
  hello verify --manifest expectations.toml`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyManifestPath, "manifest", "",
		"Path to the expectations manifest (default: manifestPath from config)")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// Tag every log line of this run so harness logs can correlate runs.
	logger := newLogger(cfg).With(map[string]interface{}{
		"run_id": uuid.New().String(),
	})

	path := verifyManifestPath
	if path == "" {
		path = cfg.ManifestPath
	}

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	logger.Debug("Manifest loaded", map[string]interface{}{
		"fixture":  m.Name,
		"manifest": path,
		"lines":    len(m.ExpectedStdout),
	})

	result := m.Check(report.Transcript())

	out := cmd.OutOrStdout()
	for _, line := range result.Lines {
		if line.OK {
			fmt.Fprintf(out, "ok   line %d: %s\n", line.Index+1, line.Want)
			continue
		}
		fmt.Fprintf(out, "FAIL line %d: want %q, got %q\n", line.Index+1, line.Want, line.Got)
	}
	for _, extra := range result.ExtraLines {
		fmt.Fprintf(out, "FAIL extra output: %q\n", extra)
	}

	if !result.Passed() {
		logger.Error("Transcript does not match manifest", map[string]interface{}{
			"fixture": m.Name,
		})
		return fmt.Errorf("fixture %s failed verification", m.Name)
	}

	logger.Info("Transcript matches manifest", map[string]interface{}{
		"fixture": m.Name,
	})
	fmt.Fprintf(out, "%s: %d lines verified\n", m.Name, len(result.Lines))
	return nil
}
