package domain

// CanMutate decides whether callerID may perform an owner-restricted
// mutation on a resource owned by ownerID. Liking and commenting are
// deliberately not owner-restricted and never consult this policy.
func CanMutate(callerID, ownerID string) bool {
	return callerID != "" && callerID == ownerID
}
