package latency

import "context"

// Op names the kind of service call being simulated. Each op has its own
// configured latency.
type Op string

const (
	OpList        Op = "list"
	OpGet         Op = "get"
	OpCreate      Op = "create"
	OpUpdate      Op = "update"
	OpDelete      Op = "delete"
	OpSearch      Op = "search"
	OpGenerate    Op = "generate"
	OpUpload      Op = "upload"
	OpPreferences Op = "preferences"
	OpProfile     Op = "profile"
	OpProfileEdit Op = "profile_edit"
	OpInvite      Op = "invite"
	OpBook        Op = "book"
)

// Simulator stands in for network latency in front of the in-memory stores.
//
// Wait blocks for the op's delay and returns nil. It returns ctx.Err() only
// when ctx is done before the delay elapses.
type Simulator interface {
	Wait(ctx context.Context, op Op) error
}
