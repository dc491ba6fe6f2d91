package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest checks struct tags on a parsed request body. The
// error middleware maps validation failures to 400 responses.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
