package guardmap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PolicyConfig is the declarative document form of a Policy. Absent fields
// default to false; unrecognized fields are ignored. The normalization
// implication is applied on conversion, so a document setting only
// fullyImmutable yields a policy with both immutability flags set.
type PolicyConfig struct {
	FullyImmutable         bool `json:"fullyImmutable,omitempty" yaml:"fullyImmutable,omitempty"`
	PropertiesImmutable    bool `json:"propertiesImmutable,omitempty" yaml:"propertiesImmutable,omitempty"`
	ErrorOnMutationBlocked bool `json:"errorOnMutationBlocked,omitempty" yaml:"errorOnMutationBlocked,omitempty"`
	ErrorOnMissingKey      bool `json:"errorOnMissingKey,omitempty" yaml:"errorOnMissingKey,omitempty"`
}

// Policy converts the document to a normalized Policy.
func (c PolicyConfig) Policy() Policy {
	return Policy{
		FullyImmutable:         c.FullyImmutable,
		PropertiesImmutable:    c.PropertiesImmutable,
		ErrorOnMutationBlocked: c.ErrorOnMutationBlocked,
		ErrorOnMissingKey:      c.ErrorOnMissingKey,
	}.normalized()
}

// ParsePolicyConfig decodes a yaml policy document into a normalized Policy.
// An empty document yields the zero policy. The library performs no file I/O;
// callers hand in the bytes.
func ParsePolicyConfig(data []byte) (Policy, error) {
	var c PolicyConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Policy{}, fmt.Errorf("parse policy config: %w", err)
	}
	return c.Policy(), nil
}
