package gobwire

import (
	"errors"
	"fmt"
)

// TruncatedInputError reports that a varint, segment body, or
// primitive payload ran off the end of the buffer.
type TruncatedInputError struct {
	Need int
	Have int
	Msg  string
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("gobwire: truncated input (%s): need %d bytes, have %d", e.Msg, e.Need, e.Have)
}

// IsTruncatedInput reports whether err is a TruncatedInputError.
func IsTruncatedInput(err error) bool {
	var e *TruncatedInputError
	return errors.As(err, &e)
}

// UnknownTypeIDError reports a reference to a type id with no decoder
// registered under it — includes ids outside the predefined range that
// were never introduced by a registration message.
type UnknownTypeIDError struct {
	TID int
}

func (e *UnknownTypeIDError) Error() string {
	return fmt.Sprintf("gobwire: unknown type id %d", e.TID)
}

// IsUnknownTypeID reports whether err is an UnknownTypeIDError.
func IsUnknownTypeID(err error) bool {
	var e *UnknownTypeIDError
	return errors.As(err, &e)
}

// MalformedDescriptorError reports a wire-type descriptor with zero or
// more than one non-default sub-field, or a struct field-delta index
// that walks past the end of the field list.
type MalformedDescriptorError struct {
	Msg string
}

func (e *MalformedDescriptorError) Error() string {
	return fmt.Sprintf("gobwire: malformed descriptor: %s", e.Msg)
}

// IsMalformedDescriptor reports whether err is a MalformedDescriptorError.
func IsMalformedDescriptor(err error) bool {
	var e *MalformedDescriptorError
	return errors.As(err, &e)
}

// SegmentLengthMismatchError reports that a segment's declared byte
// length does not match the bytes actually consumed while decoding it.
type SegmentLengthMismatchError struct {
	Msg string
}

func (e *SegmentLengthMismatchError) Error() string {
	return fmt.Sprintf("gobwire: segment length mismatch: %s", e.Msg)
}

// IsSegmentLengthMismatch reports whether err is a SegmentLengthMismatchError.
func IsSegmentLengthMismatch(err error) bool {
	var e *SegmentLengthMismatchError
	return errors.As(err, &e)
}

// TrailingBytesError reports that DecodeAll consumed every message
// but the buffer still held partial content afterward.
type TrailingBytesError struct {
	Remaining int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("gobwire: %d trailing byte(s) after last message", e.Remaining)
}

// IsTrailingBytes reports whether err is a TrailingBytesError.
func IsTrailingBytes(err error) bool {
	var e *TrailingBytesError
	return errors.As(err, &e)
}

// ArrayLengthMismatchError reports that an array descriptor's declared
// length differs from the transmitted element count.
type ArrayLengthMismatchError struct {
	Declared int
	Got      int
}

func (e *ArrayLengthMismatchError) Error() string {
	return fmt.Sprintf("gobwire: array length mismatch: declared %d, got %d", e.Declared, e.Got)
}

// IsArrayLengthMismatch reports whether err is an ArrayLengthMismatchError.
func IsArrayLengthMismatch(err error) bool {
	var e *ArrayLengthMismatchError
	return errors.As(err, &e)
}

// SegmentTooLargeError reports that a segment's declared length exceeds
// the configured maximum, refusing to allocate or scan a buffer sized
// off an unvalidated, attacker-controlled length prefix.
type SegmentTooLargeError struct {
	Declared int
	Max      int
}

func (e *SegmentTooLargeError) Error() string {
	return fmt.Sprintf("gobwire: segment length %d exceeds maximum %d", e.Declared, e.Max)
}

// IsSegmentTooLarge reports whether err is a SegmentTooLargeError.
func IsSegmentTooLarge(err error) bool {
	var e *SegmentTooLargeError
	return errors.As(err, &e)
}

// ElementCountTooLargeError reports that an array, slice, or map
// descriptor's declared element count exceeds the configured maximum.
type ElementCountTooLargeError struct {
	Declared int
	Max      int
}

func (e *ElementCountTooLargeError) Error() string {
	return fmt.Sprintf("gobwire: element count %d exceeds maximum %d", e.Declared, e.Max)
}

// IsElementCountTooLarge reports whether err is an ElementCountTooLargeError.
func IsElementCountTooLarge(err error) bool {
	var e *ElementCountTooLargeError
	return errors.As(err, &e)
}

// InvalidEncodeArgumentError reports that Encode was called on a Go
// value with no corresponding wire type. EncodeUvarint takes a uint64,
// so a negative value cannot reach it and it returns no error.
type InvalidEncodeArgumentError struct {
	Msg string
}

func (e *InvalidEncodeArgumentError) Error() string {
	return fmt.Sprintf("gobwire: invalid encode argument: %s", e.Msg)
}

// IsInvalidEncodeArgument reports whether err is an InvalidEncodeArgumentError.
func IsInvalidEncodeArgument(err error) bool {
	var e *InvalidEncodeArgumentError
	return errors.As(err, &e)
}
