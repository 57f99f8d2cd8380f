package domain

import "strings"

// MergedState is the pull request state that makes it eligible for the
// release note.
const MergedState = "merged"

// IsMerged reports whether a state string reported by the platform means
// merged, ignoring case.
func IsMerged(state string) bool {
	return strings.EqualFold(strings.TrimSpace(state), MergedState)
}

// MatchesProject reports whether a board title belongs to the release
// identified by prefix and version.
func MatchesProject(title, prefix, version string) bool {
	return strings.Contains(title, prefix) && strings.Contains(title, version)
}

// MatchesRepository reports whether a repository reference from a board
// item ("owner/name", a URL, or a bare name) points at repository.
func MatchesRepository(ref, owner, repository string) bool {
	ref = strings.TrimSuffix(strings.TrimSpace(ref), "/")
	if ref == "" {
		return false
	}
	if strings.EqualFold(ref, repository) || strings.EqualFold(ref, owner+"/"+repository) {
		return true
	}
	return strings.HasSuffix(strings.ToLower(ref), "/"+strings.ToLower(owner+"/"+repository))
}
