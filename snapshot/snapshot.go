package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hupe1980/ragged"
	"github.com/hupe1980/ragged/codec"
	"github.com/hupe1980/ragged/internal/conv"
)

var (
	// ErrBadMagic indicates data that is not a snapshot frame.
	ErrBadMagic = errors.New("bad magic")
	// ErrUnsupportedVersion indicates a frame written by a newer format
	// revision.
	ErrUnsupportedVersion = errors.New("unsupported frame version")
	// ErrUnknownCodec indicates a frame whose recorded codec name has no
	// built-in implementation.
	ErrUnknownCodec = errors.New("unknown codec")
	// ErrUnknownCompression indicates an unrecognized compression type.
	ErrUnknownCompression = errors.New("unknown compression")
	// ErrTruncated indicates a frame shorter than its header claims.
	ErrTruncated = errors.New("truncated frame")
)

// Frame layout, all integers little-endian:
//
//	magic "RGD1"      4 bytes
//	version           1 byte
//	compression       1 byte (stored type, after incompressible fallback)
//	codec name length 1 byte
//	codec name        n bytes
//	uncompressed size 4 bytes
//	payload size      4 bytes
//	payload           payload-size bytes
var frameMagic = [4]byte{'R', 'G', 'D', '1'}

const frameVersion = 1

// Source exposes the two raw buffers of a flattened container. It is
// satisfied by *ragged.FlatArray[T], *ragged.FlatVec[T] and, for
// T == byte, *ragged.Text.
type Source[T any] interface {
	Content() []T
	Offsets() []int
}

// raw is the codec-encoded form of the two buffers.
type raw[T any] struct {
	Content []T   `json:"content"`
	Offsets []int `json:"offsets"`
}

// Options configure frame encoding and decoding.
type Options struct {
	// Codec encodes the raw buffers. Defaults to codec.Default. Ignored
	// when decoding: frames name their codec.
	Codec codec.Codec

	// Compression is the block compression applied to the encoded
	// payload. Defaults to CompressionNone. Ignored when decoding.
	Compression Compression

	// Logger receives debug-level traces of frame sizes, codec and
	// compression. Defaults to a discarding logger.
	Logger *slog.Logger
}

func defaultOptions() Options {
	return Options{
		Codec:       codec.Default,
		Compression: CompressionNone,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// Marshal encodes the content and offset buffers of src into a
// self-describing frame.
func Marshal[T any](src Source[T], optFns ...func(o *Options)) ([]byte, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if o.Codec == nil {
		o.Codec = codec.Default
	}
	if !o.Compression.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, o.Compression)
	}

	name := o.Codec.Name()
	if len(name) == 0 || len(name) > 255 {
		return nil, fmt.Errorf("codec name %q does not fit the frame header", name)
	}

	body, err := o.Codec.Marshal(raw[T]{Content: src.Content(), Offsets: src.Offsets()})
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	payload, stored, err := compressPayload(body, o.Compression)
	if err != nil {
		return nil, err
	}

	rawSize, err := conv.IntToUint32(len(body))
	if err != nil {
		return nil, fmt.Errorf("payload too large: %w", err)
	}
	payloadSize, err := conv.IntToUint32(len(payload))
	if err != nil {
		return nil, fmt.Errorf("payload too large: %w", err)
	}

	frame := make([]byte, 0, 4+3+len(name)+8+len(payload))
	frame = append(frame, frameMagic[:]...)
	frame = append(frame, frameVersion, byte(stored), byte(len(name)))
	frame = append(frame, name...)
	frame = binary.LittleEndian.AppendUint32(frame, rawSize)
	frame = binary.LittleEndian.AppendUint32(frame, payloadSize)
	frame = append(frame, payload...)

	o.Logger.Debug("snapshot frame encoded",
		"codec", name,
		"compression", stored.String(),
		"payload_bytes", len(body),
		"frame_bytes", len(frame),
	)

	return frame, nil
}

// Unmarshal decodes a frame produced by Marshal into a growable
// container. The offset invariants are validated before the container
// is returned; corrupted frames yield an error, never a container that
// breaks the iteration contract.
func Unmarshal[T any](data []byte, optFns ...func(o *Options)) (*ragged.FlatVec[T], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if len(data) < 7 {
		return nil, ErrTruncated
	}
	if [4]byte(data[:4]) != frameMagic {
		return nil, ErrBadMagic
	}
	if data[4] != frameVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}
	ct := Compression(data[5])
	if !ct.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, ct)
	}
	nameLen := int(data[6])

	rest := data[7:]
	if len(rest) < nameLen+8 {
		return nil, ErrTruncated
	}
	name := string(rest[:nameLen])
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	rawSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(rest[nameLen:]))
	if err != nil {
		return nil, err
	}
	payloadSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(rest[nameLen+4:]))
	if err != nil {
		return nil, err
	}
	payload := rest[nameLen+8:]
	if len(payload) < payloadSize {
		return nil, ErrTruncated
	}
	payload = payload[:payloadSize]

	body, err := decompressPayload(payload, ct, rawSize)
	if err != nil {
		return nil, err
	}

	var r raw[T]
	if err := c.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	// Construction boundary: FromRawVec rejects offsets that violate the
	// layout invariants.
	fv, err := ragged.FromRawVec(r.Content, r.Offsets)
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("snapshot frame decoded",
		"codec", name,
		"compression", ct.String(),
		"rows", fv.NumRows(),
		"elements", fv.Len(),
	)

	return fv, nil
}

// WithCodec sets the codec used for encoding.
func WithCodec(c codec.Codec) func(o *Options) {
	return func(o *Options) { o.Codec = c }
}

// WithCompression sets the payload compression used for encoding.
func WithCompression(ct Compression) func(o *Options) {
	return func(o *Options) { o.Compression = ct }
}

// WithLogger sets the logger receiving debug traces.
func WithLogger(l *slog.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}
