package assetlib

import (
	"fmt"

	"github.com/assetctl/cli/pkg/assets"
	"github.com/assetctl/cli/pkg/assetsapi"
	"github.com/fatih/color"
)

type DeleteCommandArguments struct {
	ObjectID int
}

func DeleteCommand(
	api assetsapi.Connection, arguments *DeleteCommandArguments,
) error {
	err := assets.DeleteObject(&api, arguments.ObjectID)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green(fmt.Sprintf(
		"Deleted object %d", arguments.ObjectID)))
	return nil
}
