package assetlib

import (
	"fmt"
	"os"

	"github.com/assetctl/cli/pkg/assets"
	"github.com/assetctl/cli/pkg/assetsapi"
	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

type ListCommandArguments struct {
	ObjectType   string
	ObjectTypeID int
}

/*
ListCommand
List every object of one type, one page at a time. On a terminal a
live line reports pagination progress while pages are being fetched.
*/
func ListCommand(
	api assetsapi.Connection, arguments *ListCommandArguments,
) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		writer := uilive.New()
		writer.Start()
		defer writer.Stop()
		api.OnPage = func(fetched, total int) {
			fmt.Fprintf(writer, "Fetched %d of %d objects\n", fetched, total)
		}
	}

	objects, err := assets.ListByType(
		&api, arguments.ObjectType, arguments.ObjectTypeID)
	if err != nil {
		return err
	}
	return printJSON(objects)
}
