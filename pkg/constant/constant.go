package constant

const (
	// BearerScheme is the only Authorization scheme the API accepts.
	BearerScheme = "Bearer"

	// Keys under which the auth middleware stores request identity.
	LocalsUserID = "user_id"
	LocalsToken  = "token"
)
