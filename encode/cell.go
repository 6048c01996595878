package encode

// Object is the caller-supplied value for an OBJECT column: an opaque
// serializer tag plus the payload that tag identifies. The encoder
// never inspects tag or payload; it only frames them.
type Object struct {
	Tag     int32
	Payload []byte
}
