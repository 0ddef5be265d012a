package errors

import "github.com/solmarket/marketplace-client/constant"

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// IsType reports whether err is a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	cerr, ok := err.(CustomError)
	return ok && cerr.errType == errorType
}
