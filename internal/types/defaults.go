//nolint:revive // types is a standard Go package name pattern
package types

// DefaultPersonalInfo returns an empty contact header.
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{}
}

// DefaultResume returns the document an editor starts from: empty scalars and
// empty (non-nil) sequences so it serializes as [] rather than null.
func DefaultResume() *Resume {
	return &Resume{
		PersonalInfo: DefaultPersonalInfo(),
		Experience:   []Experience{},
		Education:    []Education{},
		Skills:       []Skill{},
		Projects:     []Project{},
		Certificates: []Certificate{},
	}
}

// DefaultExperience returns a blank experience entry that is not a current job.
func DefaultExperience() Experience {
	return Experience{IsCurrentJob: false}
}

// DefaultEducation returns a blank education entry.
func DefaultEducation() Education {
	return Education{IsCurrentStudy: false}
}

// DefaultSkill returns a blank skill at Intermediate level.
func DefaultSkill() Skill {
	return Skill{Level: LevelIntermediate}
}

// DefaultProject returns a blank project.
func DefaultProject() Project {
	return Project{}
}

// DefaultCertificate returns a blank certificate.
func DefaultCertificate() Certificate {
	return Certificate{}
}
