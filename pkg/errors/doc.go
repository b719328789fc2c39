// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "failed to load NestLang document",
//	    err,
//	    map[string]any{
//	        "source": uri,
//	    },
//	)
//
// At HTTP boundaries the code selects the response status:
//
//	status := errors.CodeOf(err).HTTPStatus()
package errors
