package middlewares

// CanAccess is the single routing-guard rule: with no required roles any
// authenticated user passes, otherwise the role must be one of them. Every
// protected route goes through this, instead of per-page checks.
func CanAccess(role string, requiredRoles ...string) bool {
	if len(requiredRoles) == 0 {
		return role != ""
	}
	for _, r := range requiredRoles {
		if role == r {
			return true
		}
	}
	return false
}
