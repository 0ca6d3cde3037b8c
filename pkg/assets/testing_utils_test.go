package assets

import (
	"fmt"
	"strings"

	"github.com/assetctl/cli/pkg/assetsapi"
)

func schemaPath(objectTypeID int) string {
	return fmt.Sprintf(
		"/objecttype/%d/attributes"+
			"?excludeParentAttributes=true&includeValueExist=true",
		objectTypeID,
	)
}

// Object type 21 ("Server"): a label attribute, a reference to object
// type 35 ("Operating System") and a plain text attribute.
const serverSchemaJSON = `[
	{"id": 1, "name": "Name", "label": true},
	{"id": 2, "name": "Operating System", "referenceObjectTypeId": 35},
	{"id": 3, "name": "Notes"}
]`

const osSchemaJSON = `[
	{"id": 10, "name": "Name", "label": true}
]`

func schemaEndpoint(schema string, count int) *assetsapi.MockEndpoint {
	requests := make([]assetsapi.MockRequest, 0, count)
	for i := 0; i < count; i++ {
		requests = append(requests, assetsapi.MockRequest{
			Response: assetsapi.MockResponse{Text: schema},
		})
	}
	return &assetsapi.MockEndpoint{Requests: requests}
}

func aqlEndpoint(responses ...string) *assetsapi.MockEndpoint {
	requests := make([]assetsapi.MockRequest, 0, len(responses))
	for _, response := range responses {
		requests = append(requests, assetsapi.MockRequest{
			Response: assetsapi.MockResponse{Text: response},
		})
	}
	return &assetsapi.MockEndpoint{Requests: requests}
}

func searchResult(objects ...string) string {
	return fmt.Sprintf(`{"total": %d, "values": [%s]}`,
		len(objects), strings.Join(objects, ", "))
}

func objectJSON(id int, objectTypeID int, label string) string {
	return fmt.Sprintf(
		`{"id": %d,
		  "objectKey": "IT-%d",
		  "label": %q,
		  "objectType": {"id": %d},
		  "attributes": []}`,
		id, id, label, objectTypeID,
	)
}
