package memberships

import "fmt"

// DeriveNumber folds the user id into a stable five digit card number.
// The same user id always yields the same number; collisions across users
// are possible and acceptable since user_id is the real identity.
func DeriveNumber(prefix, userID string) string {
	var h int32
	for _, r := range userID {
		h = h*31 + int32(r)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%s%d", prefix, n%90000+10000)
}
