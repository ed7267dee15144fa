// Command herodex serves the read-only hero catalog over HTTP and MCP, and
// answers one-off catalog queries from the command line.
//
//	@title			herodex API
//	@version		1.0
//	@description	Read-only hero catalog with paging and name search.
//	@BasePath		/
package main

import (
	"errors"
	"fmt"
	"os"

	_ "github.com/HerbHall/herodex/docs"
	"github.com/HerbHall/herodex/internal/version"
)

const usage = `usage: herodex <command> [flags]

commands:
  serve     run the HTTP server (default)
  page      print one catalog page as JSON
  search    print heroes whose name contains a query as JSON
  version   print build information
`

// errQueryFailed marks a query that was answered with success=false. The
// response has already been printed.
var errQueryFailed = errors.New("query failed")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, errQueryFailed) {
			fmt.Fprintf(os.Stderr, "herodex: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := "serve"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		return runServe(args)
	case "page":
		return runPage(args, os.Stdout)
	case "search":
		return runSearch(args, os.Stdout)
	case "version":
		fmt.Println(version.Info())
		return nil
	case "help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
