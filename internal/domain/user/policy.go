package user

// Two role-check semantics exist and callers must pick one explicitly:
//
//   - HasRole: exact-set membership. The user's role must literally appear
//     in the allowed list. Used for routes that name their allowed roles.
//   - IsAtLeast: hierarchical minimum. The user's rank must be at or above
//     the required role's rank, so admin satisfies every manager check.
//
// Mixing the two silently at a call site is how access bugs happen, so
// there is deliberately no function that guesses which one you meant.

// HasRole reports whether the profile's role is literally one of the
// allowed roles. A missing profile or an empty allowed set never passes.
func HasRole(p *Profile, allowed ...Role) bool {
	if p == nil {
		return false
	}
	for _, role := range allowed {
		if p.Role == role {
			return true
		}
	}
	return false
}

// IsAtLeast reports whether the profile's role ranks at or above the
// required role. Unknown roles rank 0 on either side and always fail.
func IsAtLeast(p *Profile, required Role) bool {
	if p == nil {
		return false
	}
	userRank := p.Role.Rank()
	requiredRank := required.Rank()
	if userRank == 0 || requiredRank == 0 {
		return false
	}
	return userRank >= requiredRank
}
