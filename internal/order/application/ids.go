package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newOrderID builds an identifier with a millisecond timestamp for debugging
// and a random fragment for uniqueness. Not a capability token; it does not
// need to be unguessable.
func newOrderID(now time.Time) string {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), frag)
}
