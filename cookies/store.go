// Package cookies persists small named string values in browser cookies.
package cookies

// Store reads and writes named string values with an expiry.
// Values containing reserved cookie characters must be percent-encoded by the caller.
type Store interface {
	// Get returns the stored value, or false when the cookie is absent or expired
	Get(name string) (string, bool)

	// Set stores value for days days from now, scoped to the whole site
	Set(name, value string, days int)

	// Remove deletes the value immediately by writing an already-expired record
	Remove(name string)
}
