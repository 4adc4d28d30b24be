package service

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// JSONCodec serializes plain Go structs with encoding/json. It takes the
// "json" name so browser clients can post application/json bodies.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
