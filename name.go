package injector

const (
	// Prefix is prepended to every logical name to form its lookup key.
	// Dependency names declared by consumers must carry it to match.
	Prefix = "$$"

	// InjectorName is the reserved logical name of the container itself.
	InjectorName = "injector"
)

// injectorKey is always answered with the container doing the lookup.
var injectorKey = Key(InjectorName)

// Key returns the lookup key for the logical name.
func Key(name string) string {
	return Prefix + name
}
