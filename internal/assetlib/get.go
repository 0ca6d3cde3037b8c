package assetlib

import (
	"errors"
	"fmt"

	"github.com/assetctl/cli/pkg/assets"
	"github.com/assetctl/cli/pkg/assetsapi"
)

type GetCommandArguments struct {
	ObjectID int
}

func GetCommand(
	api assetsapi.Connection, arguments *GetCommandArguments,
) error {
	object, err := assets.GetObject(&api, arguments.ObjectID)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			return fmt.Errorf("object %d not found", arguments.ObjectID)
		}
		return err
	}
	return printJSON(object)
}
