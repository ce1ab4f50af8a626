package ports

// NumberSource defines the interface for sourcing a list of numbers to
// decompose, like a YAML file.
type NumberSource interface {
	// GetNumbers loads the numbers in the order they were listed.
	GetNumbers() ([]int64, error)
	// GetSourceIdentifier returns a user-friendly description of where the numbers come from.
	GetSourceIdentifier() string
}
