package gobwire

import (
	"github.com/sirupsen/logrus"
)

// _lg is the package-level default logger, overridable with SetLogger.
var _lg = logrus.New()

// SetLogger replaces the package-level default logger used by Sessions
// created without an explicit SessionOption logger.
func SetLogger(lg *logrus.Logger) {
	if lg != nil {
		_lg = lg
	}
}

// decodeSegment reads exactly one length-framed segment off buf and
// either applies a type registration to reg (isRegistration == true)
// or decodes and returns one value (isRegistration == false).
func decodeSegment(buf []byte, reg *registry, lg *logrus.Logger, maxLen int) (value Value, isRegistration bool, rest []byte, err error) {
	segLenU, afterLen, err := DecodeUvarint(buf)
	if err != nil {
		return Value{}, false, nil, err
	}
	segLen := int(segLenU)
	if maxLen > 0 && segLen > maxLen {
		return Value{}, false, nil, &SegmentTooLargeError{Declared: segLen, Max: maxLen}
	}
	if len(afterLen) < segLen {
		return Value{}, false, nil, &TruncatedInputError{Need: segLen, Have: len(afterLen), Msg: "segment body"}
	}
	segment := afterLen[:segLen]
	rest = afterLen[segLen:]

	tid, afterTID, err := DecodeVarint(segment)
	if err != nil {
		return Value{}, false, nil, err
	}

	if tid < 0 {
		wtDecoder, ok := reg.lookup(tidWireType)
		if !ok {
			return Value{}, false, nil, &UnknownTypeIDError{TID: tidWireType}
		}
		wtVal, afterWT, err := wtDecoder.decode(afterTID, reg)
		if err != nil {
			return Value{}, false, nil, err
		}
		if len(afterWT) != 0 {
			return Value{}, false, nil, &SegmentLengthMismatchError{Msg: "trailing data in registration segment"}
		}
		newDecoder, err := resolveWireType(wtVal, reg)
		if err != nil {
			return Value{}, false, nil, err
		}
		newTID := int(-tid)
		reg.register(newTID, newDecoder)
		if lg != nil {
			lg.Debugf("gobwire: registered type id %d (%s)", newTID, wtVal.StructName())
		}
		return Value{}, true, rest, nil
	}

	if tid == 0 {
		return Value{}, false, nil, &MalformedDescriptorError{Msg: "type id 0 used as a message type"}
	}

	fd, ok := reg.lookup(int(tid))
	if !ok {
		return Value{}, false, nil, &UnknownTypeIDError{TID: int(tid)}
	}

	body := afterTID
	if _, isStruct := fd.(structDecoder); !isStruct {
		// Non-struct top-level values are framed as a one-field outer
		// record, so they carry a field-delta terminator byte before
		// the payload even though there is no struct wrapping them.
		if len(body) == 0 || body[0] != 0 {
			return Value{}, false, nil, &MalformedDescriptorError{Msg: "missing field-delta terminator for non-struct value"}
		}
		body = body[1:]
	}

	val, afterVal, err := fd.decode(body, reg)
	if err != nil {
		return Value{}, false, nil, err
	}
	if len(afterVal) != 0 {
		return Value{}, false, nil, &SegmentLengthMismatchError{Msg: "trailing data in value segment"}
	}
	if lg != nil {
		lg.Debugf("gobwire: decoded value of type id %d", tid)
	}
	return val, false, rest, nil
}

// decodeMessage consumes zero or more registration segments followed
// by exactly one value segment.
func decodeMessage(buf []byte, reg *registry, lg *logrus.Logger, maxLen int) (Value, []byte, error) {
	rest := buf
	for {
		v, isRegistration, tail, err := decodeSegment(rest, reg, lg, maxLen)
		if err != nil {
			return Value{}, nil, err
		}
		rest = tail
		if !isRegistration {
			return v, rest, nil
		}
	}
}

// Session is a decoding session: a type registry plus its
// configuration, carried across however many messages the caller
// decodes. Registrations made while decoding one message remain
// visible to every later call on the same Session, the same way a
// live gob stream accumulates its type dictionary as it goes.
type Session struct {
	reg    *registry
	lg     *logrus.Logger
	maxLen int
}

// SessionOption configures a Session at construction.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	logger     *logrus.Logger
	strictBool bool
	maxLen     int
}

// SetSessionLogger configures the Session's logger, overriding the
// package default.
func SetSessionLogger(lg *logrus.Logger) SessionOption {
	return func(c *sessionConfig) { c.logger = lg }
}

// SetStrictBool makes the Session reject a boolean encoded as a uint
// of 2 or more with a MalformedDescriptorError, instead of silently
// treating it as false.
func SetStrictBool(strict bool) SessionOption {
	return func(c *sessionConfig) { c.strictBool = strict }
}

// SetMaxSegmentLength caps the declared byte length of any one segment
// and the declared element count of any one array, slice, or map, so
// that a corrupt or hostile length prefix can't make the decoder try
// to allocate or scan an unbounded amount of memory before the
// underlying buffer is even checked. A value of 0 (the default) leaves
// both unbounded.
func SetMaxSegmentLength(n int) SessionOption {
	return func(c *sessionConfig) { c.maxLen = n }
}

// NewSession creates a fresh decoding session, seeded with the
// built-in and bootstrap type ids.
func NewSession(opts ...SessionOption) *Session {
	cfg := sessionConfig{logger: _lg}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session{
		reg:    newRegistry(cfg.strictBool, cfg.maxLen),
		lg:     cfg.logger,
		maxLen: cfg.maxLen,
	}
}

// Decode decodes exactly one message off buf, returning the decoded
// value and the unconsumed tail. Type registrations encountered along
// the way are recorded in the Session's registry and remain visible to
// subsequent calls.
func (s *Session) Decode(buf []byte) (Value, []byte, error) {
	return decodeMessage(buf, s.reg, s.lg, s.maxLen)
}

// DecodeAll decodes every message in buf, erroring if any bytes remain
// once the buffer is exhausted.
func (s *Session) DecodeAll(buf []byte) ([]Value, error) {
	var values []Value
	rest := buf
	for len(rest) > 0 {
		v, tail, err := s.Decode(rest)
		if err != nil {
			// Session.Decode is only ever invoked here at a message
			// boundary, so a truncation failure means the bytes left
			// over after the last complete message don't form another
			// one — report it as trailing content rather than an
			// in-message truncation.
			if IsTruncatedInput(err) {
				return nil, &TrailingBytesError{Remaining: len(rest)}
			}
			return nil, err
		}
		values = append(values, v)
		rest = tail
	}
	return values, nil
}

// Result is one element of a Stream: either a decoded value or the
// error that ended the stream.
type Result struct {
	Value Value
	Err   error
}

// Stream yields every message in buf lazily over a channel, stopping
// at the first error, rather than building the whole slice up front.
func (s *Session) Stream(buf []byte) <-chan Result {
	ch := make(chan Result)
	go func() {
		defer close(ch)
		rest := buf
		for len(rest) > 0 {
			v, tail, err := s.Decode(rest)
			if err != nil {
				ch <- Result{Err: err}
				return
			}
			ch <- Result{Value: v}
			rest = tail
		}
	}()
	return ch
}

// Decode decodes exactly one message from buf using a fresh Session,
// ignoring any trailing bytes left in the buffer.
func Decode(buf []byte) (Value, error) {
	v, _, err := NewSession().Decode(buf)
	return v, err
}

// DecodeAll decodes every message in buf using a fresh Session,
// erroring on any bytes left over after the last message, eagerly
// materialised as a slice; see Session.Stream for the lazy form.
func DecodeAll(buf []byte) ([]Value, error) {
	return NewSession().DecodeAll(buf)
}
