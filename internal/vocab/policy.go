package vocab

import "fmt"

// LoadPolicy decides what Reload does with lines it cannot accept
type LoadPolicy int

const (
	// LoadSkipMalformed keeps every good line and reports the rest
	LoadSkipMalformed LoadPolicy = iota

	// LoadAbortOnMalformed rejects the whole load on the first bad line
	LoadAbortOnMalformed
)

// Policy names used in configuration
const (
	PolicyNameSkip  = "skip"
	PolicyNameAbort = "abort"
)

// String returns the configuration name of the policy
func (p LoadPolicy) String() string {
	switch p {
	case LoadSkipMalformed:
		return PolicyNameSkip
	case LoadAbortOnMalformed:
		return PolicyNameAbort
	default:
		return "unknown"
	}
}

// ParseLoadPolicy maps a configuration name to a policy
func ParseLoadPolicy(name string) (LoadPolicy, error) {
	switch name {
	case PolicyNameSkip:
		return LoadSkipMalformed, nil
	case PolicyNameAbort:
		return LoadAbortOnMalformed, nil
	default:
		return LoadSkipMalformed, fmt.Errorf("unknown load policy %q (must be %s or %s)", name, PolicyNameSkip, PolicyNameAbort)
	}
}

// LoadPolicyNames lists the accepted configuration names
func LoadPolicyNames() []string {
	return []string{PolicyNameSkip, PolicyNameAbort}
}
