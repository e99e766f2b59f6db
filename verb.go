package docdb

import (
	"net/http"

	pkgerrors "github.com/jdziat/docdb-go/pkg/errors"
)

// ValidateVerb checks that verb is one of GET, POST, PUT or DELETE. The
// check is case-sensitive.
func ValidateVerb(verb string) *Result {
	if err := validateVerb(verb); err != nil {
		return failure(err)
	}
	return success(nil)
}

func validateVerb(verb string) error {
	switch verb {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return nil
	default:
		return pkgerrors.NewValidationError(KindInvalidVerb, "verb", verb)
	}
}

// hasBody reports whether verb carries a JSON body.
func hasBody(verb string) bool {
	return verb == http.MethodPost || verb == http.MethodPut
}
