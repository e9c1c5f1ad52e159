// Command pytokens is a thin Cobra CLI exercising the tokenizer library: it
// prints the token stream for a file, walks a directory tokenizing every
// .py file it finds, and can watch a single file for changes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "pytokens",
		Short:         "Byte-faithful Python source tokenizer",
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newWatchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pytokens: %v\n", err)
		os.Exit(1)
	}
}
