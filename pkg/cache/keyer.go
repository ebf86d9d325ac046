package cache

import "fmt"

// Keyer builds cache keys. Keys from different methods never collide.
type Keyer interface {
	// DeckKey identifies a built deck layout.
	DeckKey(sourceHash string, opts DeckKeyOpts) string

	// ArtifactKey identifies one rendered output of a deck.
	ArtifactKey(deckHash string, opts ArtifactKeyOpts) string
}

// DeckKeyOpts are the inputs besides the source bytes that change a built
// deck.
type DeckKeyOpts struct {
	// Images maps image names to content fingerprints. Missing images map to
	// "" so that adding a file later invalidates the entry.
	Images map[string]string `json:"images,omitempty"`
}

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
	Font   string  `json:"font,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DeckKey implements Keyer.
func (DefaultKeyer) DeckKey(sourceHash string, opts DeckKeyOpts) string {
	return hashKey("deck", sourceHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(deckHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), deckHash, opts)
}
