package openai

// UpstreamError is a structured error reported by the OpenAI API itself,
// such as an invalid model name or an exhausted quota.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// TransportError covers every other failure mode of an upstream call:
// network errors, timeouts, and responses that could not be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
