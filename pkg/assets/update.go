package assets

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/assetctl/cli/pkg/assetsapi"
)

/*
UpdateObject
Bring a live object in line with a desired-state description, sending
only the attributes that actually drifted.

Properties are resolved against the schema exactly like CreateObject
resolves them, including reference-label resolution and optional stub
creation. Each resolved property is then diffed against the live
object's current value; if nothing drifted, ErrNoChange is returned and
no PUT is issued.
*/
func UpdateObject(
	api *assetsapi.Connection,
	object *AssetObject,
	desired DesiredObject,
	opts Options,
) (*AssetObject, error) {
	schema, err := GetSchema(api, object.ObjectType.ID)
	if err != nil {
		return nil, err
	}

	updates := make([]AttributeValue, 0, len(desired))
	for _, name := range desired.sortedNames() {
		attribute := schema.ResolveAttribute(name)
		if attribute == nil {
			api.Logger.Info().
				Str("property", name).
				Int("objectTypeId", object.ObjectType.ID).
				Msg("no schema attribute matches property, skipping")
			continue
		}
		values := desiredValues(desired[name])
		if attribute.IsReference() {
			values = resolveReferences(api, attribute, values, desired, opts, 0)
		}
		update, changed := diffAttribute(
			object, values, attribute.ID, attribute.IsReference())
		if changed {
			updates = append(updates, update)
		}
	}

	if len(updates) == 0 {
		api.Logger.Info().
			Int("objectId", object.ID).
			Msg("object already matches desired state")
		return nil, ErrNoChange
	}

	payload, err := json.Marshal(writeRequest{
		ObjectTypeID: object.ObjectType.ID,
		Attributes:   updates,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("/object/%d", object.ID)
	body, err := api.Request("PUT", url, payload)
	if err != nil {
		api.Logger.Error().
			Err(err).
			Str("url", url).
			RawJSON("payload", payload).
			Msg("object update failed")
		return nil, err
	}

	var updated AssetObject
	err = json.Unmarshal(body, &updated)
	if err != nil {
		return nil, err
	}
	if updated.ObjectKey == "" {
		api.Logger.Error().
			Str("url", url).
			RawJSON("payload", payload).
			Msg("update response carries no object key")
		return nil, errors.New("update response carries no object key")
	}

	api.Logger.Info().
		Str("objectKey", updated.ObjectKey).
		Int("objectId", updated.ID).
		Int("attributes", len(updates)).
		Msg("object updated")
	return &updated, nil
}
