package limits

// Byte-size caps for upstream API responses

const (
	// APIResponse is the maximum size for a single API response body (4MB).
	// A full 100-repository listing page stays well under this.
	APIResponse = 4 << 20

	// ErrorBody is the maximum size for error response bodies (1KB)
	// Used when extracting error messages from failed API calls
	ErrorBody = 1024
)
