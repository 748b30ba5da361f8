package json

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pwnedgod/hexa/codec"
)

const Name = "json"

var api = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonCodec struct {
}

func NewCodec() codec.Codec {
	return &jsonCodec{}
}

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

func (c jsonCodec) Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

func (c jsonCodec) Name() string {
	return Name
}
