package assets

import "fmt"

/*
diffAttribute
Compare one attribute of a live object against its desired values and
return the pending update when they drifted.

A live object with no entry for the attribute at all counts as changed,
since there is new data to set. Reference attributes compare as sets of
referenced object ids (order is irrelevant, any addition or removal
counts). Scalar attributes compare the single live value against the
single desired value; multi-valued scalars are not diffed element-wise.
*/
func diffAttribute(
	live *AssetObject,
	desired []interface{},
	attributeTypeID int,
	isReference bool,
) (AttributeValue, bool) {
	current := live.AttributeByID(attributeTypeID)
	if current == nil {
		return newAttributeValue(attributeTypeID, desired), true
	}

	var equal bool
	if isReference {
		equal = referenceSetsEqual(current.Values, desired)
	} else {
		equal = scalarsEqual(current.Values, desired)
	}
	if equal {
		return AttributeValue{}, false
	}
	return newAttributeValue(attributeTypeID, desired), true
}

func referenceSetsEqual(
	live []AttributeValueEntry, desired []interface{},
) bool {
	liveSet := make(map[int]bool, len(live))
	for _, entry := range live {
		if entry.ReferencedObject != nil {
			liveSet[entry.ReferencedObject.ID] = true
		}
	}
	desiredSet := make(map[int]bool, len(desired))
	for _, value := range desired {
		id, ok := value.(int)
		if !ok {
			return false
		}
		desiredSet[id] = true
	}
	if len(liveSet) != len(desiredSet) {
		return false
	}
	for id := range desiredSet {
		if !liveSet[id] {
			return false
		}
	}
	return true
}

func scalarsEqual(live []AttributeValueEntry, desired []interface{}) bool {
	if len(live) == 0 && len(desired) == 0 {
		return true
	}
	if len(live) == 0 || len(desired) == 0 {
		return false
	}
	// The remote returns numbers as JSON floats; normalize both sides
	// through their string form before comparing.
	return fmt.Sprint(live[0].Value) == fmt.Sprint(desired[0])
}
