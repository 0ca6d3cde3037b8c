package assetlib

import (
	"errors"
	"fmt"
	"os"

	"github.com/assetctl/cli/pkg/assets"
	"github.com/assetctl/cli/pkg/assetsapi"
	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

type SearchCommandArguments struct {
	Query string
}

/*
SearchCommand
Run a verbatim AQL query and print the matching objects. The query is
passed through to the remote service untouched.
*/
func SearchCommand(
	api assetsapi.Connection, arguments *SearchCommandArguments,
) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		writer := uilive.New()
		writer.Start()
		defer writer.Stop()
		api.OnPage = func(fetched, total int) {
			fmt.Fprintf(writer, "Fetched %d of %d objects\n", fetched, total)
		}
	}

	objects, err := assets.QueryByAQL(&api, arguments.Query)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Println(yellow("The query returned no results."))
			return nil
		}
		return err
	}
	return printJSON(objects)
}
