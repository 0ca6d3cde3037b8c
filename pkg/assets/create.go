package assets

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/assetctl/cli/pkg/assetsapi"
)

// DefaultMaxDepth bounds recursive reference creation. A chain of
// stub objects deeper than this fails with ErrMaxDepth instead of
// recursing forever through mutually-referencing object types.
const DefaultMaxDepth = 10

// Properties that are never propagated from a desired object into the
// stubs created for its unresolved references.
var stubExclusions = map[string]bool{
	"Label":       true,
	"Description": true,
	"Notes":       true,
}

type Options struct {
	// CreateReferences makes unresolved reference labels create stub
	// objects of the referenced type instead of being skipped.
	CreateReferences bool

	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

type writeRequest struct {
	ObjectTypeID int              `json:"objectTypeId"`
	Attributes   []AttributeValue `json:"attributes"`
}

/*
CreateObject
Create one object of the given type from a desired-state description.

Property names are resolved against the type's schema ("Label" maps to
the label attribute); properties without a matching attribute are
logged and dropped. Values of reference attributes are treated as
labels and resolved to object ids via FindByLabelAndType; labels that
don't resolve are skipped, or, with opts.CreateReferences, satisfied
by recursively creating a stub object of the referenced type. A
reference attribute whose labels all failed to resolve is still
submitted, with an empty value list.

Success requires the response to carry an object key.
*/
func CreateObject(
	api *assetsapi.Connection,
	objectTypeID int,
	desired DesiredObject,
	opts Options,
) (*AssetObject, error) {
	return createObject(api, objectTypeID, desired, opts, 0)
}

func createObject(
	api *assetsapi.Connection,
	objectTypeID int,
	desired DesiredObject,
	opts Options,
	depth int,
) (*AssetObject, error) {
	if depth > opts.maxDepth() {
		api.Logger.Error().
			Int("objectTypeId", objectTypeID).
			Int("depth", depth).
			Msg("reference creation chain too deep, giving up")
		return nil, ErrMaxDepth
	}

	schema, err := GetSchema(api, objectTypeID)
	if err != nil {
		return nil, err
	}

	attributes := make([]AttributeValue, 0, len(desired))
	for _, name := range desired.sortedNames() {
		values := desiredValues(desired[name])
		if len(values) == 0 {
			continue
		}
		attribute := schema.ResolveAttribute(name)
		if attribute == nil {
			api.Logger.Info().
				Str("property", name).
				Int("objectTypeId", objectTypeID).
				Msg("no schema attribute matches property, skipping")
			continue
		}
		if attribute.IsReference() {
			values = resolveReferences(api, attribute, values, desired, opts, depth)
		}
		attributes = append(attributes, newAttributeValue(attribute.ID, values))
	}

	payload, err := json.Marshal(writeRequest{
		ObjectTypeID: objectTypeID,
		Attributes:   attributes,
	})
	if err != nil {
		return nil, err
	}

	body, err := api.Request("POST", "/object/create", payload)
	if err != nil {
		api.Logger.Error().
			Err(err).
			Str("url", "/object/create").
			RawJSON("payload", payload).
			Msg("object creation failed")
		return nil, err
	}

	var created AssetObject
	err = json.Unmarshal(body, &created)
	if err != nil {
		return nil, err
	}
	if created.ObjectKey == "" {
		api.Logger.Error().
			Str("url", "/object/create").
			RawJSON("payload", payload).
			Msg("creation response carries no object key")
		return nil, errors.New("creation response carries no object key")
	}

	api.Logger.Info().
		Str("objectKey", created.ObjectKey).
		Int("objectId", created.ID).
		Msg("object created")
	return &created, nil
}

// resolveReferences turns the labels of a reference attribute into
// object ids. Labels that cannot be resolved (or whose stub creation
// fails) are logged and omitted; the returned list may be shorter than
// the input, or empty.
func resolveReferences(
	api *assetsapi.Connection,
	attribute *AttributeDefinition,
	values []interface{},
	desired DesiredObject,
	opts Options,
	depth int,
) []interface{} {
	resolved := make([]interface{}, 0, len(values))
	for _, value := range values {
		label := fmt.Sprint(value)
		id, err := resolveReference(
			api, label, attribute.ReferenceObjectTypeID, desired, opts, depth)
		if err != nil {
			continue
		}
		resolved = append(resolved, id)
	}
	return resolved
}

func resolveReference(
	api *assetsapi.Connection,
	label string,
	referenceTypeID int,
	desired DesiredObject,
	opts Options,
	depth int,
) (int, error) {
	referenced, err := FindByLabelAndType(api, label, referenceTypeID)
	if err == nil {
		return referenced.ID, nil
	}
	if !errors.Is(err, ErrNotFound) {
		api.Logger.Warn().
			Err(err).
			Str("label", label).
			Int("objectTypeId", referenceTypeID).
			Msg("reference lookup failed, skipping value")
		return 0, err
	}
	if !opts.CreateReferences {
		api.Logger.Info().
			Str("label", label).
			Int("objectTypeId", referenceTypeID).
			Msg("reference not resolved, skipping value")
		return 0, err
	}

	stub, err := buildStub(api, label, referenceTypeID, desired)
	if err != nil {
		return 0, err
	}

	// Nested stubs always create their own references, whatever the
	// caller originally asked for.
	stubOpts := opts
	stubOpts.CreateReferences = true
	created, err := createObject(api, referenceTypeID, stub, stubOpts, depth+1)
	if err != nil {
		api.Logger.Warn().
			Err(err).
			Str("label", label).
			Int("objectTypeId", referenceTypeID).
			Msg("could not create reference stub, skipping value")
		return 0, err
	}
	return created.ID, nil
}

// buildStub assembles the desired state for a stub reference object:
// the label it has to carry, plus every property of the original
// desired object that also exists in the referenced type's schema.
// This propagates shared attributes (say, "Manufacturer") down a
// reference chain.
func buildStub(
	api *assetsapi.Connection,
	label string,
	referenceTypeID int,
	desired DesiredObject,
) (DesiredObject, error) {
	schema, err := GetSchema(api, referenceTypeID)
	if err != nil {
		return nil, err
	}
	stub := DesiredObject{LabelProperty: label}
	for _, name := range desired.sortedNames() {
		if stubExclusions[name] {
			continue
		}
		if schema.ResolveAttribute(name) == nil {
			continue
		}
		stub[name] = desired[name]
	}
	return stub, nil
}

func newAttributeValue(
	attributeTypeID int, values []interface{},
) AttributeValue {
	// An empty value list still produces an attribute entry; the remote
	// receives it as "objectAttributeValues": []
	entries := make([]AttributeValueEntry, 0, len(values))
	for _, value := range values {
		entries = append(entries, AttributeValueEntry{Value: value})
	}
	return AttributeValue{
		AttributeTypeID: attributeTypeID,
		Values:          entries,
	}
}
