package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newGuessCommand(a *app) *cobra.Command {
	var perLine bool
	cmd := &cobra.Command{
		Use:   "guess [text...]",
		Short: "Print the language code of text (read from stdin if no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGuesser()
			if err != nil {
				return err
			}
			return eachInput(cmd, args, perLine, func(text string) {
				fmt.Fprintln(cmd.OutOrStdout(), g.Guess(text))
			})
		},
	}
	cmd.Flags().BoolVarP(&perLine, "lines", "l", false, "classify every input line on its own")
	return cmd
}

func newInfoCommand(a *app) *cobra.Command {
	var perLine bool
	cmd := &cobra.Command{
		Use:   "info [text...]",
		Short: "Print code, id and name of the language of text",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGuesser()
			if err != nil {
				return err
			}
			return eachInput(cmd, args, perLine, func(text string) {
				info := g.GuessInfo(text)
				id, name := "-", "-"
				if n, ok := info.ID(); ok {
					id = fmt.Sprint(n)
				}
				if s, ok := info.Name(); ok {
					name = s
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", info.Code, id, name)
			})
		},
	}
	cmd.Flags().BoolVarP(&perLine, "lines", "l", false, "classify every input line on its own")
	return cmd
}

// eachInput calls fn for the text given on the command line or, without
// arguments, for the text read from stdin.
func eachInput(cmd *cobra.Command, args []string, perLine bool, fn func(string)) error {
	if len(args) > 0 {
		fn(strings.Join(args, " "))
		return nil
	}
	in := cmd.InOrStdin()
	if !perLine {
		text, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		fn(string(text))
		return nil
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

