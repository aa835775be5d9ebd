package swap

import (
	"context"
)

// Context is just the request context, used to pass authentication
// information and similar request-scoped values between the dispatch
// layer and the handlers. Extensions, such as auth, may define their
// own keys to enrich the context with specific data.
type Context = context.Context
