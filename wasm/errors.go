package wasm

import "errors"

var (
	// ErrUnexpectedEnd means the binary ended before the field being read completed.
	ErrUnexpectedEnd = errors.New("unexpected end of binary")

	ErrInvalidMagicNumber     = errors.New("invalid magic number")
	ErrInvalidVersion         = errors.New("invalid version header")
	ErrInvalidSectionID       = errors.New("invalid section id")
	ErrInvalidFunctionTypeTag = errors.New("invalid function type tag")
	ErrInvalidValueType       = errors.New("invalid value type")
	ErrInvalidExternKind      = errors.New("invalid extern kind")

	// ErrInvalidByte is returned for one-byte tag sets without a dedicated
	// error, e.g. the limits flag or a constant expression opcode.
	ErrInvalidByte = errors.New("invalid byte")
)
