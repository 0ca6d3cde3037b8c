package assets

import (
	"encoding/json"
	"fmt"

	"github.com/assetctl/cli/pkg/assetsapi"
)

/*
GetSchema
Fetch the attribute schema of an object type. A remote failure or an
empty attribute list yields ErrSchemaNotFound; callers branch on the
sentinel instead of inspecting transport errors.
*/
func GetSchema(
	api *assetsapi.Connection, objectTypeID int,
) (*ObjectTypeSchema, error) {
	path := fmt.Sprintf(
		"/objecttype/%d/attributes"+
			"?excludeParentAttributes=true&includeValueExist=true",
		objectTypeID,
	)
	body, err := api.Request("GET", path, nil)
	if err != nil {
		api.Logger.Warn().
			Err(err).
			Int("objectTypeId", objectTypeID).
			Msg("could not fetch object type schema")
		return nil, ErrSchemaNotFound
	}

	var attributes []AttributeDefinition
	err = json.Unmarshal(body, &attributes)
	if err != nil {
		api.Logger.Warn().
			Err(err).
			Int("objectTypeId", objectTypeID).
			Msg("could not parse object type schema")
		return nil, ErrSchemaNotFound
	}
	if len(attributes) == 0 {
		api.Logger.Warn().
			Int("objectTypeId", objectTypeID).
			Msg("object type has no attributes")
		return nil, ErrSchemaNotFound
	}

	return &ObjectTypeSchema{
		ObjectTypeID: objectTypeID,
		Attributes:   attributes,
	}, nil
}
