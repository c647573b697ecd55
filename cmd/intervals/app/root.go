package app

import (
	"flag"
	"io"
	"os"

	"github.com/henderiw/intervals/pkg/command"
	"github.com/henderiw/intervals/pkg/settable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// NewRootCommand returns the intervals command. Commands are read from
// stdin unless --input names a file; results go to stdout.
func NewRootCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "Maintain a set of disjoint half-open integer intervals",
		Long: `intervals reads one command per line and prints the resulting set:

  A <left> <right>   add [left, right)
  R <left> <right>   remove [left, right)
  P                  print the set
  C                  clear the set
  S <name> [k=v,..]  switch to a named set, creating it when missing
  L [selector]       list named sets matching a label selector
  D <name>           delete a named set
  Q                  quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return errors.Wrap(err, "loading config")
			}
			return run(cmd, cfg, stdin)
		},
	}
	cmd.SetOut(stdout)
	addFlags(cmd.Flags())

	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	cmd.PersistentFlags().AddGoFlagSet(fs)
	return cmd
}

func run(cmd *cobra.Command, cfg *Config, stdin io.Reader) error {
	printer, err := command.NewPrinter(cfg.Output)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.Input != "" && cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	table, err := settable.New(nil)
	if err != nil {
		return err
	}
	defer table.Clear()

	prompt := cfg.Prompt
	if cfg.Quiet {
		prompt = ""
	}
	session, err := command.NewSession(table, cmd.OutOrStdout(), command.Config{
		Prompt:  prompt,
		Set:     cfg.Set,
		Printer: printer,
	})
	if err != nil {
		return err
	}
	klog.V(2).InfoS("session started", "set", cfg.Set, "output", cfg.Output, "input", cfg.Input)
	return session.Run(cmd.Context(), in)
}
