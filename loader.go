package dper

// Loader reads the raw content of a peer document.
type Loader interface {
	Load() ([]byte, error)
}
