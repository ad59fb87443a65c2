package core

// Environment selects the runtime profile the service boots with. The
// assistant only distinguishes local development from production; logging
// verbosity and output format hang off this.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether the service runs with the production profile.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment maps a raw config value onto a known environment. Anything
// unrecognized falls back to Development so local runs work unconfigured.
func ParseEnvironment(v string) Environment {
	if Environment(v) == Production {
		return Production
	}
	return Development
}
