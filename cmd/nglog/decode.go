package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nglog/nglog-go/pkg/nglog"
	"github.com/spf13/cobra"
)

var (
	// decode flags
	decodeOutput string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a world-variant log to plain text",
	Long: `Decode a world-variant ngLog file into its plain local form.

The world variant pairs every byte of the original text with a second
byte and stores the pair; XORing each pair restores the text. Decoding
fails if the input length is odd. Reads from stdin when no file is
given (or the file is "-").

Examples:
  # Decode a world log to stdout
  nglog decode netgame_2024-01-15.log

  # Decode from stdin into a file
  nglog decode -o netgame.txt < netgame_2024-01-15.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "",
		"Write decoded text to a file instead of stdout")
}

func runDecode(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	decoded, err := nglog.DecodeWorld(data)
	if err != nil {
		return err
	}

	if decodeOutput != "" {
		return os.WriteFile(decodeOutput, decoded, 0644)
	}
	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}
