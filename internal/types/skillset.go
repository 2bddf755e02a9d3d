package types

import "sort"

// SkillSet is a set of canonical skill names (lowercase).
type SkillSet map[string]bool

// NewSkillSet builds a SkillSet from the given skill names.
func NewSkillSet(names ...string) SkillSet {
	s := make(SkillSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Has reports whether the set contains the given skill.
func (s SkillSet) Has(name string) bool {
	return s[name]
}

// Intersect returns the skills present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	result := make(SkillSet)
	for name := range s {
		if other[name] {
			result[name] = true
		}
	}
	return result
}

// Subtract returns the skills present in s but not in other.
func (s SkillSet) Subtract(other SkillSet) SkillSet {
	result := make(SkillSet)
	for name := range s {
		if !other[name] {
			result[name] = true
		}
	}
	return result
}

// Sorted returns the skill names in alphabetical order.
func (s SkillSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RankedByLength returns the skill names sorted longest first, ties broken alphabetically.
// Longer skill names are usually more specific and therefore more informative to surface.
func (s SkillSet) RankedByLength() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// RequirementSet holds the must-have and preferred skills extracted from a job
// posting. The two sets are disjoint: a skill mentioned under both cue
// categories is classified as must-have.
type RequirementSet struct {
	MustHave  SkillSet `json:"must_have"`
	Preferred SkillSet `json:"preferred"`
}
