package permission

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Document is the exported form of the mirror.
type Document struct {
	Users []UserRoles `yaml:"users"`
	Roles []RoleCodes `yaml:"roles"`
}

type UserRoles struct {
	UserID uint   `yaml:"user_id"`
	Roles  []uint `yaml:"roles"`
}

type RoleCodes struct {
	RoleID uint     `yaml:"role_id"`
	Codes  []string `yaml:"codes"`
}

// Document groups the stored rules by user and by role, sorted by id.
func (m *Mirror) Document() (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	grouping, err := m.enforcer.GetGroupingPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to read role links: %w", err)
	}
	policies, err := m.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to read grants: %w", err)
	}

	users := map[uint][]uint{}
	for _, rule := range grouping {
		userID, ok := subjectID(rule[0], userPrefix)
		roleID, ok2 := subjectID(rule[1], rolePrefix)
		if !ok || !ok2 {
			continue
		}
		users[userID] = append(users[userID], roleID)
	}

	roles := map[uint][]string{}
	for _, rule := range policies {
		roleID, ok := subjectID(rule[0], rolePrefix)
		if !ok {
			continue
		}
		roles[roleID] = append(roles[roleID], rule[1])
	}

	doc := &Document{Users: []UserRoles{}, Roles: []RoleCodes{}}
	for id, ids := range users {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		doc.Users = append(doc.Users, UserRoles{UserID: id, Roles: ids})
	}
	for id, codes := range roles {
		sort.Strings(codes)
		doc.Roles = append(doc.Roles, RoleCodes{RoleID: id, Codes: codes})
	}
	sort.Slice(doc.Users, func(i, j int) bool { return doc.Users[i].UserID < doc.Users[j].UserID })
	sort.Slice(doc.Roles, func(i, j int) bool { return doc.Roles[i].RoleID < doc.Roles[j].RoleID })

	return doc, nil
}

// ExportYAML renders Document as YAML.
func (m *Mirror) ExportYAML() ([]byte, error) {
	doc, err := m.Document()
	if err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal policy: %w", err)
	}
	return out, nil
}
