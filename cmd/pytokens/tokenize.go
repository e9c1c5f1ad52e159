package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/pytokens/token"
	"github.com/aledsdavies/pytokens/tokenizer"
)

func newTokenizeCmd() *cobra.Command {
	var kindFilter string

	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Print one token per line: kind start end text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var wantKind token.Kind
			filtering := kindFilter != ""
			if filtering {
				k, ok := token.ParseKind(kindFilter)
				if !ok {
					return fmt.Errorf("unknown kind %q%s", kindFilter, suggestKind(kindFilter))
				}
				wantKind = k
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			return runTokenize(cmd, string(source), filtering, wantKind)
		},
	}

	cmd.Flags().StringVar(&kindFilter, "kind", "", "only print tokens of this kind (e.g. \"identifier\")")
	return cmd
}

func runTokenize(cmd *cobra.Command, source string, filtering bool, wantKind token.Kind) error {
	t := tokenizer.Tokenize(source)
	for {
		tok, err := t.Next()
		if err != nil {
			if errors.Is(err, tokenizer.ErrDone) {
				return nil
			}
			return err
		}
		if filtering && tok.Kind != wantKind {
			continue
		}
		printToken(cmd, source, tok)
	}
}

func printToken(cmd *cobra.Command, source string, tok token.Token) {
	lexeme := tok.Lexeme([]byte(source))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d:%d %d:%d %q\n",
		tok.Kind, tok.Start.Line, tok.Start.Col, tok.End.Line, tok.End.Col, lexeme)
}

// suggestKind returns a "did you mean" hint for an unrecognized --kind value.
func suggestKind(name string) string {
	matches := fuzzy.RankFindFold(name, token.KindNames())
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", matches[0].Target)
}
