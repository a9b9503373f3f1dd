package extprot

import "go.uber.org/zap"

// Conv is the stable serialize/deserialize/read/write facade described in
// §4.7. The non-versioned entry points (Serialize, Deserialize, Read,
// Write below) are free functions generic over the host value type T,
// mirroring kungfusheep/glint's own Encoder[T]/Decoder[T] split between a
// typed façade and an untyped impl — Go methods cannot introduce their own
// type parameters, so the versioned entry points, which necessarily span
// heterogeneous per-version types via VersionedCodec's `any`, live on this
// struct instead, carrying the optional logger they accept.
type Conv struct {
	Logger *zap.Logger
}

// NewConv returns a Conv using logger for the versioned entry points.
// A nil logger is replaced with a no-op one.
func NewConv(logger *zap.Logger) *Conv {
	return &Conv{Logger: orNop(logger)}
}

// Serialize runs write over value into buf (or a fresh buffer if buf is
// nil) and returns the resulting bytes as an independent copy, so the
// buffer remains reusable by the caller afterwards.
func Serialize[T any](write func(*MsgBuffer, T) error, value T, buf *MsgBuffer) ([]byte, error) {
	if buf == nil {
		buf = &MsgBuffer{}
	}
	buf.Clear()
	if err := write(buf, value); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Contents())
	return out, nil
}

// Deserialize wraps data in a StringReader and runs read over it, failing
// with ErrExtraDataAfterValue if read did not consume the whole input.
func Deserialize[T any](read func(Reader, DecodeContext) (T, error), data []byte) (T, error) {
	r := NewStringReader(data)
	v, err := read(r, DefaultDecodeContext())
	if err != nil {
		var zero T
		return zero, err
	}
	if !r.AtEnd() {
		var zero T
		return zero, ErrExtraDataAfterValue
	}
	return v, nil
}

// Read runs read against ior, a blocking IO source, returning one decoded
// value.
func Read[T any](read func(Reader, DecodeContext) (T, error), ior *IOReader) (T, error) {
	return read(ior, DefaultDecodeContext())
}

// Write runs write over value into buf (or a fresh buffer if buf is nil)
// and flushes the result to iow in one call.
func Write[T any](write func(*MsgBuffer, T) error, iow *IOWriter, value T, buf *MsgBuffer) error {
	if buf == nil {
		buf = &MsgBuffer{}
	}
	buf.Clear()
	if err := write(buf, value); err != nil {
		return err
	}
	return iow.WriteRaw(buf.Contents())
}

// SerializeVersioned delegates to the package-level function of the same
// name, logging the outcome at debug level.
func (c *Conv) SerializeVersioned(fs []VersionedCodec, version int, v any, buf *MsgBuffer) ([]byte, error) {
	out, err := SerializeVersioned(fs, version, v, buf)
	if err != nil {
		c.Logger.Debug("extprot: serialize_versioned failed", zap.Int("version", version), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// DeserializeVersioned delegates to the package-level function of the same
// name, logging version mismatches at debug level.
func (c *Conv) DeserializeVersioned(fs []VersionedCodec, data []byte) (any, error) {
	v, err := DeserializeVersioned(fs, data)
	if err != nil {
		c.Logger.Debug("extprot: deserialize_versioned failed", zap.Error(err))
		return nil, err
	}
	return v, nil
}

// DeserializeVersionedExplicit delegates to the package-level function of
// the same name.
func (c *Conv) DeserializeVersionedExplicit(fs []VersionedCodec, version int, data []byte) (any, error) {
	return DeserializeVersionedExplicit(fs, version, data)
}

// ReadVersioned delegates to the package-level function of the same name,
// using c's logger.
func (c *Conv) ReadVersioned(fs []VersionedCodec, r *IOReader) (any, error) {
	return ReadVersioned(fs, r, c.Logger)
}

// WriteVersioned delegates to the package-level function of the same name,
// using c's logger.
func (c *Conv) WriteVersioned(fs []VersionedCodec, w *IOWriter, version int, v any, buf *MsgBuffer) error {
	return WriteVersioned(fs, w, version, v, buf, c.Logger)
}

// ReadFrame delegates to the package-level function of the same name.
func (c *Conv) ReadFrame(r *IOReader) (int, []byte, error) {
	return ReadFrame(r)
}
