package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/messianicchords/mc/internal/chords"
	"github.com/spf13/cobra"
)

func transposeCmd() *cobra.Command {
	var by int

	cmd := &cobra.Command{
		Use:   "transpose [file|-]",
		Short: "Transpose a plain-text chord chart by half steps",
		Long: `Reads a chord chart from a file, or stdin when the argument is "-" or
missing, and writes it transposed. Lyrics lines and spacing are kept as is.
Chords that cannot be transposed are left unchanged and reported on stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if len(args) == 0 || args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read chart: %w", err)
			}

			out := chords.TransposeText(string(raw), by, func(token string, err error) {
				slog.Warn("chord not transposed", "token", token, "err", err)
			})
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVarP(&by, "by", "n", 0, "Half steps to transpose (negative = down)")

	return cmd
}
