package assets

import "sort"

// LabelProperty is the reserved property name that always resolves to
// an object type's label attribute, whatever that attribute is really
// called.
const LabelProperty = "Label"

type AttributeDefinition struct {
	ID                    int    `json:"id"`
	Name                  string `json:"name"`
	Label                 bool   `json:"label"`
	ReferenceObjectTypeID int    `json:"referenceObjectTypeId,omitempty"`
}

// IsReference reports whether the attribute's values point at objects
// of another type.
func (a *AttributeDefinition) IsReference() bool {
	return a.ReferenceObjectTypeID != 0
}

type ObjectTypeSchema struct {
	ObjectTypeID int
	Attributes   []AttributeDefinition
}

/*
ResolveAttribute
Map a caller-supplied property name to a schema attribute. The name
"Label" resolves to the attribute flagged as the object type's label;
every other name must match an attribute name exactly (case-sensitive).
Returns nil when nothing matches.
*/
func (s *ObjectTypeSchema) ResolveAttribute(name string) *AttributeDefinition {
	if name == LabelProperty {
		for i := range s.Attributes {
			if s.Attributes[i].Label {
				return &s.Attributes[i]
			}
		}
		return nil
	}
	for i := range s.Attributes {
		if s.Attributes[i].Name == name {
			return &s.Attributes[i]
		}
	}
	return nil
}

type ObjectTypeRef struct {
	ID int `json:"id"`
}

type ObjectRef struct {
	ID        int    `json:"id"`
	ObjectKey string `json:"objectKey,omitempty"`
	Label     string `json:"label,omitempty"`
}

type AttributeValueEntry struct {
	Value            interface{} `json:"value,omitempty"`
	ReferencedObject *ObjectRef  `json:"referencedObject,omitempty"`
}

type AttributeValue struct {
	AttributeTypeID int                   `json:"objectTypeAttributeId"`
	Values          []AttributeValueEntry `json:"objectAttributeValues"`
}

type AssetObject struct {
	ID         int              `json:"id"`
	ObjectKey  string           `json:"objectKey,omitempty"`
	Label      string           `json:"label,omitempty"`
	ObjectType ObjectTypeRef    `json:"objectType"`
	Attributes []AttributeValue `json:"attributes"`
}

func (o *AssetObject) AttributeByID(attributeTypeID int) *AttributeValue {
	for i := range o.Attributes {
		// range returns copies: https://stackoverflow.com/q/20185511
		attribute := &o.Attributes[i]
		if attribute.AttributeTypeID == attributeTypeID {
			return attribute
		}
	}
	return nil
}

/*
DesiredObject
Caller-supplied description of an object: property names mapped to a
scalar value, a list of values, or label strings for reference
attributes. Only lives for the duration of a single create/update
call.
*/
type DesiredObject map[string]interface{}

func (d DesiredObject) sortedNames() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// desiredValues normalizes a desired property to a flat value list,
// dropping empty entries.
func desiredValues(value interface{}) []interface{} {
	var raw []interface{}
	switch typed := value.(type) {
	case nil:
		return nil
	case []interface{}:
		raw = typed
	case []string:
		raw = make([]interface{}, 0, len(typed))
		for _, item := range typed {
			raw = append(raw, item)
		}
	default:
		raw = []interface{}{value}
	}

	result := make([]interface{}, 0, len(raw))
	for _, item := range raw {
		if item == nil || item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}
