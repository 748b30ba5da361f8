package codec

// Codec marshals whole records, such as structs holding astext or asnum fields.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error

	// Name identifies the codec in configuration and logs.
	Name() string
}
