package auth

import "github.com/akarpov87/gotodo/internal/common"

// Authorize is the ownership policy: a verified identity may read or mutate
// a resource only when it owns it. Denial is ErrForbidden, which must stay
// distinct from ErrUnauthenticated ("logged in but not entitled" vs "not
// logged in").
func Authorize(resourceOwnerID, userID int64) error {
	if resourceOwnerID != userID {
		return common.ErrForbidden
	}
	return nil
}
