package app

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var ire InvalidRequestError
	return errors.As(err, &ire)
}

// RateLimitError is returned when github api rate limit is exceeded or the local limiter gives up.
type RateLimitError string

// Error implements error interface
func (e RateLimitError) Error() string {
	return string(e)
}

// IsRateLimitError checks if given error is caused by rate limiting
func IsRateLimitError(err error) bool {
	var rle RateLimitError
	return errors.As(err, &rle)
}

// GraphQLError is returned when graphql response contains an errors payload.
type GraphQLError struct {
	Messages []string
}

// Error implements error interface
func (e *GraphQLError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// IsGraphQLError checks if given error is caused by graphql errors payload
func IsGraphQLError(err error) bool {
	var ge *GraphQLError
	return errors.As(err, &ge)
}

// ShapeError is returned when api response doesn't have expected shape,
// e.g. required object is null or missing.
type ShapeError struct {
	Path string
}

// Error implements error interface
func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape: missing %s", e.Path)
}

// IsShapeError checks if given error is caused by response shape mismatch
func IsShapeError(err error) bool {
	var se *ShapeError
	return errors.As(err, &se)
}
