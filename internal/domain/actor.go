package domain

type Role string

const (
	RoleUser       Role = "USER"
	RoleArbitrator Role = "ARBITRATOR"
)

// ActorContext identifies the authenticated caller of a core operation.
// It is always passed explicitly, never read from ambient state.
type ActorContext struct {
	UserID            string
	VerificationLevel VerificationLevel
	Role              Role
}

func (a ActorContext) Arbitrator() bool {
	return a.Role == RoleArbitrator
}
