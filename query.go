package arcs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the persisted form of the
// store and returns the result as indented JSON. It lets users pull fields
// out of their quotes without leaving the command line, e.g.
// "$[0].items[*].part_number".
func Query(store *Store, path string) (string, error) {
	var buf bytes.Buffer
	if err := EncodeStore(&buf, store); err != nil {
		return "", err
	}

	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return "", fmt.Errorf("cannot parse encoded store: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal query result: %w", err)
	}
	return string(out), nil
}
