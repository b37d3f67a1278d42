package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// At least seven digits, made only of the characters people type in phone numbers.
const phonePattern = `^(?=(?:\D*\d){7,})[+\d\s().-]+$`

var (
	phoneExp = regexp2.MustCompile(phonePattern, regexp2.None)

	errInvalidPhone = errors.New("must be a valid phone number")
)

// phoneRule is an ozzo rule backed by regexp2, which supports the lookahead
// the pattern needs.
var phoneRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := phoneExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidPhone
	}

	return nil
})
