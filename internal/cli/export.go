package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/colombiamoda/internal/config"
	"github.com/colombiamoda/internal/logger"
	"github.com/colombiamoda/internal/page"
	"github.com/colombiamoda/internal/router"
)

type exportOptions struct {
	out      string
	manifest string
}

func newExportCmd(cfg *config.AppConfig) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the rendered landing page to a file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return export(*cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "dist/index.html", "output HTML file")
	cmd.Flags().StringVar(&opts.manifest, "manifest", "", "optional JSON file describing the sections")
	return cmd
}

func export(cfg config.AppConfig, opts exportOptions) error {
	if err := page.Validate(); err != nil {
		return fmt.Errorf("landing content: %w", err)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, router.SiteMeta(cfg)); err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}
	if err := writeFile(opts.out, buf.Bytes()); err != nil {
		return err
	}
	logger.L().Info("landing page exported", "path", opts.out, "bytes", buf.Len())

	if opts.manifest == "" {
		return nil
	}
	data, err := json.MarshalIndent(map[string]any{"sections": page.Manifest()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := writeFile(opts.manifest, append(data, '\n')); err != nil {
		return err
	}
	logger.L().Info("manifest exported", "path", opts.manifest)
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
