package cache

import (
	"bytes"
	"encoding/json"
)

// decodeValue decodes a cached JSON value, keeping numbers as json.Number so
// a cached feed hands back the same number text as a freshly fetched one.
func decodeValue(raw []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}
