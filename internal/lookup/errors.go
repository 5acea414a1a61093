package lookup

import "fmt"

// NetworkError indicates the HTTP request never completed: DNS failure,
// refused connection, timeout, or cancellation. The transport error is
// preserved for inspection.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError indicates the endpoint answered with a non-success HTTP
// status. Code and the raw response body are carried unchanged.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// ParseError indicates the response body could not be decoded as the
// expected structure, or an expected field was absent.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ServiceError indicates the endpoint answered successfully at the HTTP
// level but reported a failure inside the payload. Message is the
// upstream message verbatim.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service reported failure: %s", e.Message)
}
