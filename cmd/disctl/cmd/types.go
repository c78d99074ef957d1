package cmd

import (
	"fmt"

	"github.com/danmuck/discodec/internal/dis/catalog"
	"github.com/danmuck/discodec/internal/dis/record"
	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List known record types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range catalog.Names() {
				e, _ := catalog.Lookup(name)
				fmt.Fprintf(out, "%-30s %-10s %d\n", e.Name, e.Shape, record.Size(e.New()))
			}
			return nil
		},
	}
}

func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <type>",
		Short: "Print the encoded size of a zero-valued record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := catalog.New(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), record.Size(r))
			return nil
		},
	}
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout <type>",
		Short: "Print field offsets of a zero-valued record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := catalog.New(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range record.Layout(r) {
				fmt.Fprintf(out, "%4d %4d  %-34s %s\n", f.Offset, f.Size, f.Name, f.Kind)
			}
			return nil
		},
	}
}

func newZeroCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zero <type>",
		Short: "Print the hex encoding of a zero-valued record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := catalog.New(args[0])
			if err != nil {
				return err
			}
			data, err := a.codec.Marshal(r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "% x\n", data)
			return nil
		},
	}
}
