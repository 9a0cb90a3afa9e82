package avatar

import (
	"fmt"
	"net/url"
	"strings"
)

const initialsEndpoint = "https://api.dicebear.com/7.x/initials/svg"

// InitialsURL returns a deterministic placeholder image for the given name.
// The same name always resolves to the same artwork.
func InitialsURL(name string) string {
	seed := strings.TrimSpace(name)
	if seed == "" {
		seed = "Partner"
	}
	return fmt.Sprintf("%s?seed=%s", initialsEndpoint, url.QueryEscape(seed))
}
