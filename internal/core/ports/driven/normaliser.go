package driven

// Normaliser cleans a single raw tag into its canonical form.
// Implementations never fail: input that cleans to nothing yields "".
type Normaliser interface {
	// Name returns the normaliser name for logging.
	Name() string

	// Normalise returns the cleaned tag, possibly empty.
	Normalise(raw string) string
}
