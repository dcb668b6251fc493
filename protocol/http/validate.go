package http

import (
	"strconv"

	E "github.com/sagernet/sing-http/common/exceptions"

	"golang.org/x/net/http/httpguts"
)

var (
	ErrInvalidHeaderName  = E.New("invalid header name")
	ErrInvalidHeaderValue = E.New("invalid header value")
)

// ValidHeaders checks a flattened header list before it is handed to a
// transport. Headers itself accepts anything.
func ValidHeaders(headers []Header) error {
	var errorList []error
	for i, header := range headers {
		if !httpguts.ValidHeaderFieldName(header.Name) {
			errorList = append(errorList, E.Extend(ErrInvalidHeaderName, "#", strconv.Itoa(i), " ", strconv.Quote(header.Name)))
		}
		if !httpguts.ValidHeaderFieldValue(header.Value) {
			errorList = append(errorList, E.Extend(ErrInvalidHeaderValue, "#", strconv.Itoa(i), " ", header.Name))
		}
	}
	return E.Errors(errorList...)
}
