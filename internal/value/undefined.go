package value

type undefined struct{}

// Undefined marks the absence of a value. It differs from nil (an explicit
// null): object entries holding Undefined are left out when serialized.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsNullish reports whether v is nil or Undefined.
func IsNullish(v any) bool {
	return v == nil || IsUndefined(v)
}

func (undefined) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (undefined) String() string {
	return "undefined"
}
