package main

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"sort"

	"github.com/folbricht/dper"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type updateOptions struct {
	config  string
	offline bool
	force   bool
}

func newUpdateCmd() *cobra.Command {
	var opt updateOptions
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch peer documents and update the server configuration",
		Long: `Fetch peer documents and update the server configuration.

Loads the peer documents listed in the config file, from HTTP(S)
servers or local files, and writes the generated configuration
to the output file. Downloads are cached if a cache directory is
configured. The reconfigure command is run when the output changed.
`,
		Example: `  dper update --config /etc/dper.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return update(cmd.Context(), opt)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&opt.config, "config", "c", "dper.toml", "Configuration file")
	cmd.Flags().BoolVar(&opt.offline, "offline", false, "Only use cached peer documents")
	cmd.Flags().BoolVar(&opt.force, "force", false, "Write the output even if unchanged")
	return cmd
}

func update(ctx context.Context, opt updateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(opt.config)
	if err != nil {
		return errors.Wrapf(err, "failed to load config '%s'", opt.config)
	}

	feeds, err := buildFeeds(cfg, opt.offline)
	if err != nil {
		return err
	}
	peers, err := dper.LoadPeers(feeds...)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	err = dper.Generate(&b, peers, cfg.OutputFormat, dper.RenderOptions{
		ZoneDir:  cfg.ZoneDir,
		Template: cfg.Template,
		ACL:      cfg.ACL,
	})
	if err != nil {
		return err
	}

	changed, err := dper.WriteConfig(cfg.OutputFile, b.Bytes(), opt.force)
	if err != nil {
		return err
	}
	if changed && cfg.ReconfigureCommand != "" {
		return dper.Reconfigure(ctx, cfg.ReconfigureCommand)
	}
	return nil
}

// Builds the feeds from config, in order of their ID so the output is stable.
func buildFeeds(cfg config, offline bool) ([]*dper.Feed, error) {
	ids := make([]string, 0, len(cfg.Peers))
	for id := range cfg.Peers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var feeds []*dper.Feed
	for _, id := range ids {
		f := cfg.Peers[id]
		source, err := dper.ExpandSource(f.Source, id, f.Format)
		if err != nil {
			return nil, err
		}
		if err := validate.Var(source, "url|file"); err != nil {
			return nil, errors.Wrapf(err, "peer '%s': source '%s' is neither a URL nor a file", id, source)
		}
		var loader dper.Loader
		u, err := url.Parse(source)
		switch {
		case err == nil && (u.Scheme == "http" || u.Scheme == "https"):
			opt := dper.HTTPLoaderOptions{Offline: offline}
			if cfg.CacheDir != "" {
				opt.CacheFile = filepath.Join(cfg.CacheDir, id+"."+f.Format)
			}
			loader = dper.NewHTTPLoader(source, opt)
		case err == nil && u.Scheme == "file":
			loader = dper.NewFileLoader(u.Path)
		case err == nil && u.Scheme != "":
			return nil, fmt.Errorf("peer '%s': unsupported source scheme '%s'", id, u.Scheme)
		default:
			loader = dper.NewFileLoader(source)
		}
		feed, err := dper.NewFeed(id, loader, f.Format)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}
