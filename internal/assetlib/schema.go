package assetlib

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/assetctl/cli/pkg/assets"
	"github.com/assetctl/cli/pkg/assetsapi"
)

type SchemaCommandArguments struct {
	ObjectTypeID int
}

func SchemaCommand(
	api assetsapi.Connection, arguments *SchemaCommandArguments,
) error {
	schema, err := assets.GetSchema(&api, arguments.ObjectTypeID)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tLABEL\tREFERENCES TYPE")
	for _, attribute := range schema.Attributes {
		referenced := "-"
		if attribute.IsReference() {
			referenced = fmt.Sprint(attribute.ReferenceObjectTypeID)
		}
		fmt.Fprintf(writer, "%d\t%s\t%t\t%s\n",
			attribute.ID, attribute.Name, attribute.Label, referenced)
	}
	return writer.Flush()
}
