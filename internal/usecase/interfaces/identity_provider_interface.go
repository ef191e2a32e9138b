package interfaces

import "context"

// IIdentityProvider supplies the acting user id stamped as DiagnosedBy on
// persisted diagnostic records. Authentication itself is owned elsewhere.

type IIdentityProvider interface {
	CurrentUserID(ctx context.Context) string
}
