package localauth

// Result is the outcome of one authentication challenge.
type Result struct {
	Err *Error
}

func (r Result) IsSuccess() bool {
	return r.Err == nil
}
