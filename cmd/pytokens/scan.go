package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/pytokens/tokenizer"
)

type scanStatus string

const (
	statusSuccess scanStatus = "SUCCESS"
	statusSkip    scanStatus = "SKIP"
	statusFailure scanStatus = "FAILURE"
)

type scanResult struct {
	Path   string     `json:"path"`
	Status scanStatus `json:"status"`
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "Tokenize every .py file under a directory, reporting pass/fail as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := scanDir(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}
}

func scanDir(root string) ([]scanResult, error) {
	var results []scanResult

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".py") {
			results = append(results, scanResult{Path: path, Status: statusSkip})
			return nil
		}

		source, readErr := os.ReadFile(path)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "pytokens: scan: %s: %v\n", path, readErr)
			results = append(results, scanResult{Path: path, Status: statusFailure})
			return nil
		}

		if tokenizeErr := drainTokens(string(source)); tokenizeErr != nil {
			fmt.Fprintf(os.Stderr, "pytokens: scan: %s: %v\n", path, tokenizeErr)
			results = append(results, scanResult{Path: path, Status: statusFailure})
			return nil
		}

		results = append(results, scanResult{Path: path, Status: statusSuccess})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// drainTokens pulls every token from source, returning the first
// tokenization error encountered (if any).
func drainTokens(source string) error {
	t := tokenizer.Tokenize(source)
	for {
		_, err := t.Next()
		if err != nil {
			if errors.Is(err, tokenizer.ErrDone) {
				return nil
			}
			return err
		}
	}
}
