package assetlib

import (
	"fmt"

	"github.com/assetctl/cli/pkg/assets"
	"github.com/assetctl/cli/pkg/assetsapi"
	"github.com/fatih/color"
)

type CreateCommandArguments struct {
	ObjectTypeID     int
	Desired          assets.DesiredObject
	CreateReferences bool
	MaxDepth         int
}

func CreateCommand(
	api assetsapi.Connection, arguments *CreateCommandArguments,
) error {
	created, err := assets.CreateObject(
		&api,
		arguments.ObjectTypeID,
		arguments.Desired,
		assets.Options{
			CreateReferences: arguments.CreateReferences,
			MaxDepth:         arguments.MaxDepth,
		},
	)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green(fmt.Sprintf(
		"Created object '%s' (id %d)", created.ObjectKey, created.ID)))
	return printJSON(created)
}
