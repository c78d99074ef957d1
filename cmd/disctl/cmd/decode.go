package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/discodec/internal/config"
	"github.com/danmuck/discodec/internal/dis/catalog"
	"github.com/danmuck/discodec/internal/dis/record"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <type> [hex|file|-]",
		Short: "Decode one record and dump its fields",
		Long: `Decode one record of the named type.

With input_format = "hex" the second argument is the hex text; with "raw"
it is a file path. Without it, or with "-", input is read from stdin.
A decode failure exits with status 2.

Example:
  disctl decode EntityID "00 01 00 02 00 03"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := catalog.New(args[0])
			if err != nil {
				return err
			}
			src := "-"
			if len(args) == 2 {
				src = args[1]
			}
			data, err := a.readInput(src)
			if err != nil {
				return err
			}
			if err := a.codec.Unmarshal(data, r); err != nil {
				return &DecodeError{Record: record.Name(r), Err: err}
			}
			d := record.Dumper{Indent: strings.Repeat(" ", a.cfg.DumpIndent)}
			return d.Dump(cmd.OutOrStdout(), r)
		},
	}
}

func (a *app) readInput(src string) ([]byte, error) {
	switch a.cfg.InputFormat {
	case config.FormatRaw:
		if src == "-" {
			return io.ReadAll(a.stdin)
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	default:
		text := src
		if src == "-" {
			b, err := io.ReadAll(a.stdin)
			if err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			text = string(b)
		}
		return parseHex(text)
	}
}

// parseHex accepts hex digits with optional whitespace and a leading 0x.
func parseHex(text string) ([]byte, error) {
	text = strings.Join(strings.Fields(text), "")
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("parse hex input: %w", err)
	}
	return data, nil
}
