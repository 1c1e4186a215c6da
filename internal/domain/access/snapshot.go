package access

import "sort"

// RoleEdge links a user to a role.
type RoleEdge struct {
	UserID uint
	RoleID uint
}

// GrantEdge links a role to an operation code.
type GrantEdge struct {
	RoleID        uint
	OperationCode string
}

// Snapshot is a point-in-time copy of the grant graph, used for policy
// export and mirroring. Request-time checks never read from a snapshot.
type Snapshot struct {
	Assignments    []RoleEdge
	Authorizations []GrantEdge
}

// CodesFor returns the sorted distinct operation codes reachable from userID.
func (s *Snapshot) CodesFor(userID uint) []string {
	roles := make(map[uint]struct{})
	for _, a := range s.Assignments {
		if a.UserID == userID {
			roles[a.RoleID] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	codes := make([]string, 0)
	for _, g := range s.Authorizations {
		if _, ok := roles[g.RoleID]; !ok {
			continue
		}
		if _, dup := seen[g.OperationCode]; dup {
			continue
		}
		seen[g.OperationCode] = struct{}{}
		codes = append(codes, g.OperationCode)
	}
	sort.Strings(codes)
	return codes
}

// Users returns the sorted distinct user ids holding at least one role.
func (s *Snapshot) Users() []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0)
	for _, a := range s.Assignments {
		if _, ok := seen[a.UserID]; ok {
			continue
		}
		seen[a.UserID] = struct{}{}
		ids = append(ids, a.UserID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
