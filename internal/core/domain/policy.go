package domain

// Operation identifies an authenticated action a principal can request.
type Operation string

const (
	OpListJobs       Operation = "list_jobs"
	OpSearchJobs     Operation = "search_jobs"
	OpListUsers      Operation = "list_users"
	OpUpdateUserRole Operation = "update_user_role"
)

// OrgUQ is the organization tag regular users are confined to.
const OrgUQ = "UQ"

// Scope narrows a catalog query to the records a role may see.
// A zero Org means no restriction.
type Scope struct {
	Org string
}

// Unrestricted reports whether the scope imposes no organization filter.
func (s Scope) Unrestricted() bool {
	return s.Org == ""
}

// Allows reports whether a job falls inside the scope.
func (s Scope) Allows(j Job) bool {
	return s.Unrestricted() || j.Org == s.Org
}

// ScopeFor is the access policy: it maps (role, operation) to the scope the
// query must be constrained to, or ErrForbidden when the role may not perform
// the operation at all.
//
//	role        | jobs read/search     | list users | update role
//	regular     | org = UQ             | denied     | denied
//	vip         | unrestricted         | denied     | denied
//	super_admin | unrestricted         | allowed    | allowed
//
// Unknown roles and unknown operations are denied.
func ScopeFor(role Role, op Operation) (Scope, error) {
	switch op {
	case OpListJobs, OpSearchJobs:
		switch role {
		case RoleRegular:
			return Scope{Org: OrgUQ}, nil
		case RoleVIP, RoleSuperAdmin:
			return Scope{}, nil
		}
	case OpListUsers, OpUpdateUserRole:
		if role == RoleSuperAdmin {
			return Scope{}, nil
		}
	}
	return Scope{}, ErrForbidden
}
