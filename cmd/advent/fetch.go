package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tteague19/advent-of-code-2024/internal/inputs"
	"github.com/tteague19/advent-of-code-2024/pkg/config"
)

func newFetchCmd() *cobra.Command {
	var (
		storage string
		destDir string
		fromDir string
	)

	cmd := &cobra.Command{
		Use:   "fetch <name>",
		Short: "Download a puzzle input into the local inputs directory",
		Long: `Fetches the named puzzle input from the configured store (an S3 or GCS
bucket, or a shared local directory) and writes it to the inputs directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), fetchOpts{
				name:    args[0],
				storage: storage,
				destDir: destDir,
				fromDir: fromDir,
			})
		},
	}

	cmd.Flags().StringVar(&storage, "storage", "", "Storage backend: local, s3, or gcs (default: from config)")
	cmd.Flags().StringVar(&destDir, "dest", "", "Destination directory (default: inputs dir from config)")
	cmd.Flags().StringVar(&fromDir, "from-dir", "", "Source directory for the local backend")

	return cmd
}

type fetchOpts struct {
	name    string
	storage string
	destDir string
	fromDir string
}

func runFetch(ctx context.Context, opts fetchOpts) error {
	cfg := loadConfig()
	backend := firstNonEmpty(opts.storage, cfg.Inputs.Storage, "local")
	destDir := firstNonEmpty(opts.destDir, cfg.Inputs.Dir, "inputs")

	store, err := openStore(ctx, backend, opts.fromDir, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Fetching %s from %s store...\n", opts.name, backend)
	data, err := store.Get(ctx, opts.name)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", opts.name, err)
	}

	dest := inputs.NewLocalStore(destDir)
	if err := dest.Put(ctx, opts.name, data); err != nil {
		return fmt.Errorf("writing %s: %w", opts.name, err)
	}

	fmt.Fprintf(os.Stderr, "Saved %s (%d bytes) to %s\n", opts.name, len(data), destDir)
	return nil
}

func openStore(ctx context.Context, backend, fromDir string, cfg *config.Config) (inputs.Store, error) {
	switch backend {
	case "local":
		if fromDir == "" {
			return nil, fmt.Errorf("local backend needs --from-dir (a shared directory to copy from)")
		}
		return inputs.NewLocalStore(fromDir), nil
	case "s3":
		if cfg.Inputs.S3.Bucket == "" {
			return nil, fmt.Errorf("s3 backend needs inputs.s3.bucket in the config")
		}
		return inputs.NewS3Store(ctx, cfg.Inputs.S3)
	case "gcs":
		if cfg.Inputs.GCS.Bucket == "" {
			return nil, fmt.Errorf("gcs backend needs inputs.gcs.bucket in the config")
		}
		return inputs.NewGCSStore(ctx, cfg.Inputs.GCS.Bucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q: must be local, s3, or gcs", backend)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
