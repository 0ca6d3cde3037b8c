package assets

import (
	"fmt"

	"github.com/assetctl/cli/pkg/assetsapi"
)

/*
DeleteObject
Delete one object by id. Irreversible; the remote exposes no soft
delete or versioning.
*/
func DeleteObject(api *assetsapi.Connection, objectID int) error {
	url := fmt.Sprintf("/object/%d", objectID)
	_, err := api.Request("DELETE", url, nil)
	if err != nil {
		api.Logger.Error().
			Err(err).
			Str("url", url).
			Msg("object deletion failed")
		return err
	}
	api.Logger.Info().
		Int("objectId", objectID).
		Msg("object deleted")
	return nil
}
