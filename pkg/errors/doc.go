// Package errors provides structured error types carrying a stable code
// and optional key/value context, so callers can branch on failure class
// while logs keep enough detail to debug.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to probe accelerators",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "command": "neuron-ls",
//	        "timeout": timeout.String(),
//	    },
//	)
package errors
