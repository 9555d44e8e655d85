// Package codec holds the JSON helpers used for component snapshots and
// schema diagnostics.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Encode marshals v to JSON.
func Encode(v any) ([]byte, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "failed to encode value")
	}
	return bz, nil
}

// Decode unmarshals bz into a fresh value of type T.
func Decode[T any](bz []byte) (T, error) {
	v := new(T)
	if err := json.Unmarshal(bz, v); err != nil {
		return *v, eris.Wrap(err, "failed to decode value")
	}
	return *v, nil
}
