package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/assetctl/cli/pkg/assetsapi"
)

/*
GetObject
Fetch a single object by its numeric id. A 404 from the remote yields
ErrNotFound.
*/
func GetObject(
	api *assetsapi.Connection, objectID int,
) (*AssetObject, error) {
	body, err := api.Request("GET", fmt.Sprintf("/object/%d", objectID), nil)
	if err != nil {
		var e *assetsapi.Error
		if errors.As(err, &e) && e.StatusCode == http.StatusNotFound {
			api.Logger.Debug().
				Int("objectId", objectID).
				Msg("object not found")
			return nil, ErrNotFound
		}
		return nil, err
	}

	var result AssetObject
	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

/*
ListByType
Return every object of one type. Exactly one of objectType (the type's
name) and objectTypeID must be given. An empty result is returned as an
empty slice, not an error.
*/
func ListByType(
	api *assetsapi.Connection, objectType string, objectTypeID int,
) ([]AssetObject, error) {
	if (objectType == "") == (objectTypeID == 0) {
		return nil, errors.New(
			"exactly one of object type name and object type id must be given",
		)
	}

	var query string
	if objectType != "" {
		query = fmt.Sprintf("objectType = %q", objectType)
	} else {
		query = fmt.Sprintf("objectTypeId = %d", objectTypeID)
	}

	objects, err := searchObjects(api, query)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		api.Logger.Info().
			Str("query", query).
			Msg("query returned no results")
	}
	return objects, nil
}

/*
QueryByAQL
Run a verbatim AQL query. Zero matches yield ErrNotFound.
*/
func QueryByAQL(
	api *assetsapi.Connection, query string,
) ([]AssetObject, error) {
	objects, err := searchObjects(api, query)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		api.Logger.Info().
			Str("query", query).
			Msg("query returned no results")
		return nil, ErrNotFound
	}
	return objects, nil
}

/*
FindByLabelAndType
Look one object up by its label within one object type. Zero matches
yield ErrNotFound; more than one yield ErrAmbiguous, which wraps
ErrNotFound so both read as "no usable reference" to callers that don't
care about the difference.
*/
func FindByLabelAndType(
	api *assetsapi.Connection, label string, objectTypeID int,
) (*AssetObject, error) {
	query := fmt.Sprintf("objectTypeId = %d AND Label = %q", objectTypeID, label)
	objects, err := searchObjects(api, query)
	if err != nil {
		return nil, err
	}
	switch len(objects) {
	case 0:
		api.Logger.Debug().
			Str("label", label).
			Int("objectTypeId", objectTypeID).
			Msg("no object matches label")
		return nil, ErrNotFound
	case 1:
		return &objects[0], nil
	default:
		api.Logger.Warn().
			Str("label", label).
			Int("objectTypeId", objectTypeID).
			Int("matches", len(objects)).
			Msg("label matches more than one object")
		return nil, ErrAmbiguous
	}
}

func searchObjects(
	api *assetsapi.Connection, query string,
) ([]AssetObject, error) {
	page, err := api.Search(query)
	if err != nil {
		return nil, err
	}

	result := make([]AssetObject, 0, page.Total)
	for { // pagination
		for _, value := range page.Values {
			var object AssetObject
			err := json.Unmarshal(value, &object)
			if err != nil {
				return nil, err
			}
			result = append(result, object)
		}
		if !page.HasNext() {
			break
		}
		page, err = page.GetNext()
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
