package access

// The mutation rules live in one declarative table keyed by resource kind
// and operation, enforced by a single function. Handlers never do their own
// ownership conditionals.

type Resource int

const (
	ResourcePost Resource = iota
	ResourceComment
	ResourceProfile
)

type Operation int

const (
	OpCreate Operation = iota
	OpEdit
	OpDelete
)

// Decision is what the enforcement function tells the handler to do.
type Decision int

const (
	// Allow lets the operation proceed.
	Allow Decision = iota
	// DenyForbidden is a hard denial rendered as a 403.
	DenyForbidden
	// DenyRedirectPost is a soft denial: send the actor back to the post's
	// detail page without an error.
	DenyRedirectPost
	// DenyRedirectLogin sends an unauthenticated actor to the login flow.
	DenyRedirectLogin
)

type policyKey struct {
	resource  Resource
	operation Operation
}

type rule struct {
	requireAuth  bool
	requireOwner bool
	onFail       Decision
}

// Post edit is a soft redirect while post delete is a hard 403; that split
// is deliberate UX, not an accident. Comment mutations uniformly redirect
// back to the post they hang off of. Profile edits by anyone else are 403.
var policies = map[policyKey]rule{
	{ResourcePost, OpCreate}:    {requireAuth: true},
	{ResourcePost, OpEdit}:      {requireAuth: true, requireOwner: true, onFail: DenyRedirectPost},
	{ResourcePost, OpDelete}:    {requireAuth: true, requireOwner: true, onFail: DenyForbidden},
	{ResourceComment, OpCreate}: {requireAuth: true},
	{ResourceComment, OpEdit}:   {requireAuth: true, requireOwner: true, onFail: DenyRedirectPost},
	{ResourceComment, OpDelete}: {requireAuth: true, requireOwner: true, onFail: DenyRedirectPost},
	{ResourceProfile, OpEdit}:   {requireAuth: true, requireOwner: true, onFail: DenyForbidden},
}

// Check resolves the policy for one mutation attempt. The actor is always an
// explicit parameter; AnonymousID means no authenticated principal. ownerID
// is ignored for rules without an ownership requirement (pass AnonymousID).
//
// Check must run before any state change and before building form state.
func Check(res Resource, op Operation, ownerID, actorID int) Decision {
	p, ok := policies[policyKey{res, op}]
	if !ok {
		// Unlisted combinations never mutate anything.
		return DenyForbidden
	}
	if p.requireAuth && actorID == AnonymousID {
		return DenyRedirectLogin
	}
	if p.requireOwner && actorID != ownerID {
		return p.onFail
	}
	return Allow
}
