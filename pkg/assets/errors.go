package assets

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the remote reports no matching result.
// It is an expected outcome, not a transport failure.
var ErrNotFound = errors.New("no matching object")

// ErrAmbiguous is returned when a label+type lookup matches more than
// one object. It wraps ErrNotFound: callers that only care about "no
// usable reference" can test errors.Is(err, ErrNotFound) and cover
// both.
var ErrAmbiguous = fmt.Errorf("label matches more than one object: %w", ErrNotFound)

// ErrSchemaNotFound is returned when an object type's attribute schema
// cannot be fetched.
var ErrSchemaNotFound = errors.New("object type schema not found")

// ErrNoChange is returned by UpdateObject when the live object already
// matches the desired state. It signals success with zero drift, not a
// failure.
var ErrNoChange = errors.New("no change needed")

// ErrMaxDepth is returned when recursive reference creation exceeds
// the configured depth limit.
var ErrMaxDepth = errors.New("reference creation depth exceeded")
