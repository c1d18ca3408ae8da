package usecase

// InputError is a failure caused by what the caller sent or referenced. The
// handlers turn it into a 400 with Message as the error text.
type InputError struct {
	Message string
	Err     error
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func newInputError(err error) *InputError {
	return &InputError{Message: err.Error(), Err: err}
}
