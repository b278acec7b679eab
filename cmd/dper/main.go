package main

import (
	"fmt"
	"os"

	"github.com/folbricht/dper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	debug  bool
	syslog bool
}

type generateOptions struct {
	format      string
	zoneDir     string
	inputFormat string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		dper.Log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		global globalOptions
		opt    generateOptions
	)
	cmd := &cobra.Command{
		Use:   "dper <input>",
		Short: "Secondary zone configuration generator",
		Long: `Secondary zone configuration generator.

Reads a document describing DNS peers, the primary servers
they transfer zones from, and the zones themselves. After
validating addresses, TSIG key names and zone names, it
writes secondary zone configuration for BIND, NSD or Knot
to stdout.
`,
		Example: `  dper --format nsd --zonedir /var/lib/nsd/ peers.xml`,
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(global)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, opt, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&global.debug, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&global.syslog, "syslog", false, "Send log messages to the local syslog server as well")

	cmd.Flags().StringVarP(&opt.format, "format", "f", "", "Output format, one of bind, nsd, knot")
	cmd.Flags().StringVarP(&opt.zoneDir, "zonedir", "z", "", "Prefix for zone file names, typically a directory with trailing /")
	cmd.Flags().StringVar(&opt.inputFormat, "input-format", "xml", "Format of the input document, one of xml, json, yaml")
	_ = cmd.MarkFlagRequired("format")

	cmd.AddCommand(newUpdateCmd())
	return cmd
}

func setupLogging(opt globalOptions) error {
	dper.Log.SetOutput(os.Stderr)
	if opt.debug {
		dper.Log.SetLevel(logrus.DebugLevel)
	}
	if opt.syslog {
		hook, err := newSyslogHook("dper")
		if err != nil {
			return err
		}
		dper.Log.AddHook(hook)
	}
	return nil
}

func generate(cmd *cobra.Command, opt generateOptions, input string) error {
	if !supportedFormat(opt.format) {
		return fmt.Errorf("unsupported output format '%s'", opt.format)
	}
	feed, err := dper.NewFeed("", dper.NewFileLoader(input), opt.inputFormat)
	if err != nil {
		return err
	}
	peers, err := feed.Peers()
	if err != nil {
		return err
	}
	return dper.Generate(cmd.OutOrStdout(), peers, opt.format, dper.RenderOptions{ZoneDir: opt.zoneDir})
}

func supportedFormat(format string) bool {
	for _, f := range dper.Formats {
		if f == format {
			return true
		}
	}
	return false
}
