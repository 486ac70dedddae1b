package guardmap

// Policy is the frozen set of immutability and error-reporting flags governing
// one facade instance. The zero Policy is fully mutable and silent.
type Policy struct {
	// FullyImmutable forbids adding, changing, and removing entries.
	FullyImmutable bool

	// PropertiesImmutable forbids changing and removing existing entries.
	// Additions remain allowed. Forced true whenever FullyImmutable is true.
	PropertiesImmutable bool

	// ErrorOnMutationBlocked surfaces policy-blocked mutations as
	// *MutationBlockedError instead of a silent not-applied result.
	ErrorOnMutationBlocked bool

	// ErrorOnMissingKey surfaces reads and deletes of absent keys as
	// *MissingKeyError instead of the absent-value result.
	ErrorOnMissingKey bool
}

// normalized applies the structural implication: full immutability always
// implies property immutability. Called once at construction; the stored
// policy never changes afterward.
func (p Policy) normalized() Policy {
	if p.FullyImmutable {
		p.PropertiesImmutable = true
	}
	return p
}
