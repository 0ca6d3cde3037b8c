package assetlib

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/assetctl/cli/pkg/assets"
)

/*
ParseDesired
Parse a desired-object description from an inline JSON string or a
JSON file. Exactly one of the two must be given. The JSON must be an
object mapping property names to a value or a list of values.
*/
func ParseDesired(inline, path string) (assets.DesiredObject, error) {
	if (inline == "") == (path == "") {
		return nil, errors.New(
			"exactly one of --set and --file must be given")
	}

	data := []byte(inline)
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	var desired assets.DesiredObject
	err := json.Unmarshal(data, &desired)
	if err != nil {
		return nil, fmt.Errorf("invalid desired object: %w", err)
	}
	return desired, nil
}

func printJSON(value interface{}) error {
	output, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
