package common

import "errors"

var (
	ErrorInvalidValue   = errors.New("invalid value")
	ErrorNoData         = errors.New("no data")
	ErrorMalformedTable = errors.New("malformed reference table")
)
