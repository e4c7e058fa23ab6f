package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hierophect/lacuna-tools/ast"
	"github.com/hierophect/lacuna-tools/internal/config"
	"github.com/hierophect/lacuna-tools/parser"
)

// errIssuesFound signals that a prior file yielded issues, so the
// primary file was not parsed — spec.md §6's "non-zero if a prior file
// yielded issues" exit code. main recognizes it and exits 1 without
// printing an additional error line.
var errIssuesFound = errors.New("deck contains issues")

func run(primaryFile string, cfg *config.Config) error {
	driver := parser.NewDriver()
	if cfg.Debug {
		driver.OnFault = func(line int, err error) {
			logger.Debug().Int("line", line).Err(err).Msg("fault boundary recovered")
		}
	}

	for i, prior := range priorFiles {
		if cfg.ListInfos {
			logger.Info().Msgf("PARSING PRIOR FILE: %s", prior)
		}
		if err := parseFile(driver, prior, cfg.Verbose); err != nil {
			return err
		}
		if driver.Sink.HasIssues() {
			fmt.Printf("Error: precedent file %d contains issues before primary file\n", i)
			return errIssuesFound
		}
	}

	if cfg.ListInfos {
		logger.Info().Msgf("PARSING MAIN FILE: %s", primaryFile)
	}
	if err := parseFile(driver, primaryFile, cfg.Verbose); err != nil {
		return err
	}

	printIssues(driver.Sink)

	if !cfg.IssuesOnly {
		if err := printDeck(driver.Deck, cfg.OutPath); err != nil {
			return err
		}
	}

	if cfg.ListInfos {
		fmt.Println("INFO:")
		for _, info := range driver.Sink.Infos() {
			fmt.Println(info.String())
		}
	}

	return nil
}

func parseFile(driver *parser.Driver, path string, verbose bool) error {
	records, err := tokenizeFile(path)
	if err != nil {
		return err
	}

	driver.BeginFile()
	for _, fields := range records {
		if verbose {
			logger.Info().Str("line", strings.Join(fields, ";")).Msg("processing line")
		}
		driver.Feed(fields)
	}
	driver.EndOfFile()
	return nil
}

func printIssues(sink *ast.Sink) {
	issues := sink.Issues()
	if len(issues) == 0 {
		return
	}
	fmt.Println("ISSUES:")
	for _, issue := range issues {
		fmt.Println(issue.String())
	}
}

func printDeck(deck *ast.Deck, outPath string) error {
	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal deck: %w", err)
	}
	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
