package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedBody indicates the request body was not valid JSON for the
// expected shape.
var ErrMalformedBody = errors.New("malformed request body")

// validate is the shared validator instance; validators are safe for
// concurrent use and cache struct metadata.
var validate = validator.New()

// DecodeAndValidate decodes the JSON request body into dst and runs struct
// validation. Both failure modes are client errors.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}
