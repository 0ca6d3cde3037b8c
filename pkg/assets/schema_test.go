package assets

import (
	"testing"

	"github.com/assetctl/cli/pkg/assetsapi"
	"github.com/stretchr/testify/assert"
)

func TestGetSchema(t *testing.T) {
	mockData := assetsapi.MockData{
		schemaPath(21): schemaEndpoint(serverSchemaJSON, 1),
	}
	api := assetsapi.GetTestConnection(mockData)

	schema, err := GetSchema(&api, 21)
	assert.NoError(t, err)
	assert.Equal(t, 21, schema.ObjectTypeID)
	assert.Len(t, schema.Attributes, 3)
	assert.Equal(t, "GET", mockData[schemaPath(21)].Requests[0].Request.Method)

	testCases := []struct {
		name     string
		getter   func() interface{}
		expected interface{}
	}{
		{"first attribute id",
			func() interface{} { return schema.Attributes[0].ID }, 1},
		{"first attribute is the label",
			func() interface{} { return schema.Attributes[0].Label }, true},
		{"second attribute name",
			func() interface{} { return schema.Attributes[1].Name },
			"Operating System"},
		{"second attribute references type 35",
			func() interface{} {
				return schema.Attributes[1].ReferenceObjectTypeID
			}, 35},
		{"third attribute is not a reference",
			func() interface{} { return schema.Attributes[2].IsReference() },
			false},
	}
	for _, testCase := range testCases {
		value := testCase.getter()
		if value != testCase.expected {
			t.Errorf("Schema's %s was '%v', expected '%v'",
				testCase.name, value, testCase.expected)
		}
	}
}

func TestGetSchemaNotFound(t *testing.T) {
	mockData := assetsapi.MockData{
		schemaPath(21): {Requests: []assetsapi.MockRequest{
			{Response: assetsapi.MockResponse{Status: 404}},
		}},
	}
	api := assetsapi.GetTestConnection(mockData)

	_, err := GetSchema(&api, 21)
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestGetSchemaEmpty(t *testing.T) {
	mockData := assetsapi.MockData{
		schemaPath(21): schemaEndpoint(`[]`, 1),
	}
	api := assetsapi.GetTestConnection(mockData)

	_, err := GetSchema(&api, 21)
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestResolveAttribute(t *testing.T) {
	schema := ObjectTypeSchema{
		ObjectTypeID: 21,
		Attributes: []AttributeDefinition{
			{ID: 1, Name: "Hostname", Label: true},
			{ID: 2, Name: "Operating System", ReferenceObjectTypeID: 35},
		},
	}

	// "Label" always resolves to the label attribute, whatever its
	// real name is
	attribute := schema.ResolveAttribute("Label")
	if assert.NotNil(t, attribute) {
		assert.Equal(t, 1, attribute.ID)
	}

	attribute = schema.ResolveAttribute("Operating System")
	if assert.NotNil(t, attribute) {
		assert.Equal(t, 2, attribute.ID)
	}

	// Exact match only: names are case-sensitive
	assert.Nil(t, schema.ResolveAttribute("operating system"))
	assert.Nil(t, schema.ResolveAttribute("Bogus"))
}
