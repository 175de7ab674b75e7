// Package codecerr defines the sentinel errors returned across the schema,
// column, encoder, decoder and schemabridge packages.
//
// Callers are expected to use errors.Is/errors.As against the sentinels in
// this package rather than matching on error strings. Every wrapped error
// produced elsewhere in the module wraps one of these with fmt.Errorf("%w: ...").
package codecerr

import "errors"

// SchemaMismatch is returned by the schema bridge when an encoded value's
// wire schema cannot be reconciled with the caller's Go type: an integer
// narrowing that would lose precision, a record field whose type changed
// incompatibly, a sum variant absent from the caller's registry, and so on.
var SchemaMismatch = errors.New("colex: schema mismatch")

// InvalidFormat is the umbrella sentinel for malformed-input errors: the tag
// tree or lens stream is structurally broken, independent of whether the
// bytes would otherwise match the caller's schema. Use errors.Is against the
// more specific sentinels below to distinguish the cause; all of them also
// match errors.Is(err, InvalidFormat).
var InvalidFormat = errors.New("colex: invalid format")

// EndOfFile indicates the decoder needed more bytes than were available.
var EndOfFile = errors.Join(InvalidFormat, errors.New("unexpected end of input"))

// UnrecognizedTypeId indicates a tag byte did not map to any known
// RootTypeId or ArrayTypeId.
var UnrecognizedTypeId = errors.Join(InvalidFormat, errors.New("unrecognized type id"))

// ShortArray indicates a sequence or tuple tag claimed more elements than the
// remaining bytes could possibly hold.
var ShortArray = errors.Join(InvalidFormat, errors.New("array shorter than declared count"))

// Utf8 indicates a string column held bytes that are not valid UTF-8.
var Utf8 = errors.Join(InvalidFormat, errors.New("invalid utf-8"))

// DuplicateIdent indicates a record header listed the same canonicalized
// field identifier twice.
var DuplicateIdent = errors.Join(InvalidFormat, errors.New("duplicate field identifier in record header"))
