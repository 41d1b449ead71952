package labelschema

import "errors"

// ErrValidation is returned when validate() finds a schema/value mismatch
// or an attribute value cannot be converted.
var ErrValidation = errors.New("validation error")

// ErrEmptyTag is returned for a nil node or tag, or when TagName() returns
// an empty string.
var ErrEmptyTag = errors.New("empty tag name")

// ErrRequired is returned when a required attribute is unset.
var ErrRequired = errors.New("required attribute missing")

// ErrEnumValue is returned when an enum attribute holds a value outside its literals.
var ErrEnumValue = errors.New("value not allowed")

// ErrUnknownTag is returned by Parse() for elements with no registered tag.
var ErrUnknownTag = errors.New("unknown tag")

// ErrUnknownAttr is returned by Parse() for attributes missing from the tag schema.
var ErrUnknownAttr = errors.New("unknown attribute")

// ErrDuplicateName is returned when two tags in one config share a name.
var ErrDuplicateName = errors.New("duplicate name")

// ErrUnknownTarget is returned when a control's toName references no object tag.
var ErrUnknownTarget = errors.New("unknown toName target")

// ErrParse is returned when a config is not well-formed XML.
var ErrParse = errors.New("error parsing XML")

// ErrNotFound is returned when ReadOne() finds no matching tag.
var ErrNotFound = errors.New("tag not found")
