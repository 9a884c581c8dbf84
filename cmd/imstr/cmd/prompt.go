package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/imstr/foundation/utils/imstr"
	"github.com/msto63/imstr/internal/tui/prompt"
)

var promptInput string

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Reads a line, clones it and trims it",
	Long: `Asks for one line of input and prints it, an independent clone and the
trimmed clone, each with its length.

Input is limited to prompt.buffer_size-1 characters. Without a terminal the
line is read from stdin.

Keys:
  Enter       Submit
  Esc/Ctrl+C  Cancel`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)

	promptCmd.Flags().StringVarP(&promptInput, "input", "i", "",
		"Use this text instead of prompting")
}

// readInput returns the flag value if set, otherwise prompts. Both are cut
// to the configured buffer size.
func readInput(cmd *cobra.Command, flag, value string) (string, error) {
	cfg := prompt.Config{
		Prompt:     "> ",
		BufferSize: current.cfg.Prompt.BufferSize,
		ShowHelp:   true,
	}

	if cmd.Flags().Changed(flag) {
		return cfg.Clamp(value), nil
	}

	return prompt.Run(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}

func runPrompt(cmd *cobra.Command, args []string) error {
	s := current
	defer s.finish()

	text, err := readInput(cmd, "input", promptInput)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	input, err := s.timed("prompt.input", func() (imstr.String, error) {
		return s.factory.FromString(text)
	})
	if err != nil {
		return err
	}
	s.print(out, input)

	cloned, err := s.timed("prompt.clone", func() (imstr.String, error) {
		return s.factory.Clone(input)
	})
	if err != nil {
		return err
	}
	s.print(out, cloned)

	trimmed, err := s.timed("prompt.trim", func() (imstr.String, error) {
		return s.factory.Trim(cloned)
	})
	if err != nil {
		return err
	}
	s.print(out, trimmed)
	return nil
}
