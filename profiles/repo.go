// Package profiles caches backend profile fields per session token so that a refresh
// fetched during one request enriches the pages rendered by later requests.
package profiles

type Repo interface {
	// Upsert stores the profile fields fetched for a session token
	Upsert(token string, fields map[string]any) error

	// Get returns the cached fields, or errors.ErrNotFound
	Get(token string) (map[string]any, error)

	// Delete drops the entry for a token; deleting a missing entry is not an error
	Delete(token string) error
}
