package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"extsort/internal/config"
	"extsort/internal/demo"
	"extsort/internal/logging"
	"extsort/internal/organizer"
)

func newDemoCommand() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:         "demo",
		Short:       "Organize a throwaway sample directory to show what extsort does",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			dir, err := os.MkdirTemp("", "extsort-demo-")
			if err != nil {
				return fmt.Errorf("create demo dir: %w", err)
			}
			if keep {
				defer fmt.Fprintf(out, "Kept demo directory at %s\n", dir)
			} else {
				defer func() {
					fmt.Fprintln(out, "Cleaning up demo directory")
					_ = os.RemoveAll(dir)
				}()
			}

			fmt.Fprintf(out, "Created demo dir: %s\n", dir)
			if err := demo.Create(dir); err != nil {
				return err
			}

			logger, closer, err := logging.New(logging.Options{
				Level:   "info",
				Format:  "console",
				Sinks:   []string{config.SinkConsole},
				Console: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer closer.Close()
			org := organizer.New(logger)

			opts := organizer.DefaultOptions()
			opts.DryRun = true
			fmt.Fprintln(out, "Dry-run (no file moves):")
			preview, err := org.Organize(cmd.Context(), dir, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderResultLine(preview, false))

			opts.DryRun = false
			fmt.Fprintln(out, "Actual run (moving files):")
			result, err := org.Organize(cmd.Context(), dir, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderResultLine(result, false))

			tree, err := demo.Tree(dir)
			if err != nil {
				return fmt.Errorf("list demo tree: %w", err)
			}
			fmt.Fprintln(out, "Resulting tree:")
			for _, entry := range tree {
				fmt.Fprintf(out, "  %s\n", entry)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "Keep the demo directory instead of deleting it")
	return cmd
}
