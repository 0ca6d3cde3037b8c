package assets

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/assetctl/cli/pkg/assetsapi"
	"github.com/stretchr/testify/assert"
)

func TestGetObject(t *testing.T) {
	mockData := assetsapi.MockData{
		"/object/15": {Requests: []assetsapi.MockRequest{
			{Response: assetsapi.MockResponse{Text: `
				{"id": 15,
				 "objectKey": "IT-15",
				 "label": "web-01",
				 "objectType": {"id": 21},
				 "attributes": [
					{"objectTypeAttributeId": 1,
					 "objectAttributeValues": [{"value": "web-01"}]}
				 ]}`}},
		}},
	}
	api := assetsapi.GetTestConnection(mockData)

	object, err := GetObject(&api, 15)
	assert.NoError(t, err)
	assert.Equal(t, 15, object.ID)
	assert.Equal(t, "IT-15", object.ObjectKey)
	assert.Equal(t, "web-01", object.Label)
	assert.Equal(t, 21, object.ObjectType.ID)

	attribute := object.AttributeByID(1)
	if assert.NotNil(t, attribute) {
		assert.Equal(t, "web-01", attribute.Values[0].Value)
	}
	assert.Nil(t, object.AttributeByID(99))
}

func TestGetObjectNotFound(t *testing.T) {
	mockData := assetsapi.MockData{
		"/object/15": {Requests: []assetsapi.MockRequest{
			{Response: assetsapi.MockResponse{Status: 404}},
		}},
	}
	api := assetsapi.GetTestConnection(mockData)

	_, err := GetObject(&api, 15)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByTypeSelectorValidation(t *testing.T) {
	api := assetsapi.GetTestConnection(assetsapi.MockData{})

	_, err := ListByType(&api, "Server", 21)
	assert.Error(t, err)

	_, err = ListByType(&api, "", 0)
	assert.Error(t, err)
}

func TestListByTypePagination(t *testing.T) {
	pageObjects := func(startAt, count int) []string {
		objects := make([]string, 0, count)
		for i := 0; i < count; i++ {
			objects = append(objects,
				objectJSON(startAt+i+1, 21, fmt.Sprintf("srv-%d", startAt+i+1)))
		}
		return objects
	}
	page := func(startAt, count, total int) string {
		return fmt.Sprintf(`{"total": %d, "values": [%s]}`,
			total, strings.Join(pageObjects(startAt, count), ", "))
	}

	mockData := assetsapi.MockData{
		"/object/aql":            aqlEndpoint(page(0, 25, 60)),
		"/object/aql?startAt=25": aqlEndpoint(page(25, 25, 60)),
		"/object/aql?startAt=50": aqlEndpoint(page(50, 10, 60)),
	}
	api := assetsapi.GetTestConnection(mockData)

	objects, err := ListByType(&api, "", 21)
	assert.NoError(t, err)
	assert.Len(t, objects, 60)
	assert.Equal(t, 1, objects[0].ID)
	assert.Equal(t, 60, objects[59].ID)

	// Exactly one request per page
	for path, endpoint := range mockData {
		assert.Equal(t, 1, endpoint.Count, path)
	}
	assert.JSONEq(t,
		`{"qlQuery": "objectTypeId = 21"}`,
		string(mockData["/object/aql"].Requests[0].Request.Payload))
}

func TestListByTypeByName(t *testing.T) {
	mockData := assetsapi.MockData{
		"/object/aql": aqlEndpoint(searchResult(objectJSON(1, 21, "srv-1"))),
	}
	api := assetsapi.GetTestConnection(mockData)

	objects, err := ListByType(&api, "Server", 0)
	assert.NoError(t, err)
	assert.Len(t, objects, 1)
	assert.JSONEq(t,
		`{"qlQuery": "objectType = \"Server\""}`,
		string(mockData["/object/aql"].Requests[0].Request.Payload))
}

func TestListByTypeEmpty(t *testing.T) {
	mockData := assetsapi.MockData{
		"/object/aql": aqlEndpoint(`{"total": 0, "values": []}`),
	}
	api := assetsapi.GetTestConnection(mockData)

	objects, err := ListByType(&api, "", 21)
	assert.NoError(t, err)
	assert.Empty(t, objects)
}

func TestQueryByAQL(t *testing.T) {
	mockData := assetsapi.MockData{
		"/object/aql": aqlEndpoint(searchResult(
			objectJSON(1, 21, "srv-1"), objectJSON(2, 21, "srv-2"))),
	}
	api := assetsapi.GetTestConnection(mockData)

	objects, err := QueryByAQL(&api, `objectTypeId = 21 AND "Notes" IS EMPTY`)
	assert.NoError(t, err)
	assert.Len(t, objects, 2)
}

func TestQueryByAQLNotFound(t *testing.T) {
	mockData := assetsapi.MockData{
		"/object/aql": aqlEndpoint(`{"total": 0, "values": []}`),
	}
	api := assetsapi.GetTestConnection(mockData)

	_, err := QueryByAQL(&api, `objectTypeId = 21`)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByLabelAndType(t *testing.T) {
	mockData := assetsapi.MockData{
		"/object/aql": aqlEndpoint(searchResult(objectJSON(7, 35, "RHEL 9"))),
	}
	api := assetsapi.GetTestConnection(mockData)

	object, err := FindByLabelAndType(&api, "RHEL 9", 35)
	assert.NoError(t, err)
	assert.Equal(t, 7, object.ID)
	assert.JSONEq(t,
		`{"qlQuery": "objectTypeId = 35 AND Label = \"RHEL 9\""}`,
		string(mockData["/object/aql"].Requests[0].Request.Payload))
}

func TestFindByLabelAndTypeFailures(t *testing.T) {
	testCases := []struct {
		name     string
		response string
		expected error
	}{
		{
			"zero matches",
			`{"total": 0, "values": []}`,
			ErrNotFound,
		},
		{
			"more than one match",
			searchResult(
				objectJSON(7, 35, "RHEL 9"), objectJSON(8, 35, "RHEL 9")),
			ErrAmbiguous,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			mockData := assetsapi.MockData{
				"/object/aql": aqlEndpoint(testCase.response),
			}
			api := assetsapi.GetTestConnection(mockData)

			_, err := FindByLabelAndType(&api, "RHEL 9", 35)
			assert.ErrorIs(t, err, testCase.expected)

			// Both failure kinds collapse into "no usable reference"
			// for callers that don't care about the difference
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}
