package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/HerbHall/herodex/internal/catalog"
	"github.com/HerbHall/herodex/internal/config"
)

func runPage(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("page", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	engine, err := queryEngine(*configPath)
	if err != nil {
		return err
	}

	// No argument behaves like a request without ?page.
	raw, present := fs.Arg(0), fs.NArg() > 0
	return printResponse(out, engine.RespondPage(raw, present).Body)
}

func runSearch(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	engine, err := queryEngine(*configPath)
	if err != nil {
		return err
	}

	return printResponse(out, engine.RespondSearch(strings.Join(fs.Args(), " ")).Body)
}

func queryEngine(configPath string) (*catalog.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return buildEngine(cfg)
}

func printResponse(out io.Writer, resp catalog.APIResponse) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if !resp.Success {
		return errQueryFailed
	}
	return nil
}
