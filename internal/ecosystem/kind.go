package ecosystem

import "fmt"

// Kind selects one of the capability registries.
type Kind int

const (
	Randomizers Kind = iota
	ValueGenerators
	Charsets
	Preconfigurations
	Pipes
)

// String returns the registry type tag used in error messages.
func (k Kind) String() string {
	switch k {
	case Randomizers:
		return "randomizer"
	case ValueGenerators:
		return "value-generator"
	case Charsets:
		return "charset"
	case Preconfigurations:
		return "preconfiguration"
	case Pipes:
		return "pipe"
	default:
		panic(fmt.Sprintf("ecosystem: unknown registry kind %d", int(k)))
	}
}
