package assetlib

import (
	"errors"
	"fmt"

	"github.com/assetctl/cli/pkg/assets"
	"github.com/assetctl/cli/pkg/assetsapi"
	"github.com/fatih/color"
)

type UpdateCommandArguments struct {
	ObjectID         int
	Desired          assets.DesiredObject
	CreateReferences bool
	MaxDepth         int
}

func UpdateCommand(
	api assetsapi.Connection, arguments *UpdateCommandArguments,
) error {
	object, err := assets.GetObject(&api, arguments.ObjectID)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			return fmt.Errorf("object %d not found", arguments.ObjectID)
		}
		return err
	}

	updated, err := assets.UpdateObject(
		&api,
		object,
		arguments.Desired,
		assets.Options{
			CreateReferences: arguments.CreateReferences,
			MaxDepth:         arguments.MaxDepth,
		},
	)
	if err != nil {
		if errors.Is(err, assets.ErrNoChange) {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Println(yellow(fmt.Sprintf(
				"Object '%s' already matches the desired state, "+
					"no changes needed", object.ObjectKey)))
			return nil
		}
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green(fmt.Sprintf(
		"Updated object '%s' (id %d)", updated.ObjectKey, updated.ID)))
	return printJSON(updated)
}
