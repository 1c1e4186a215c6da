// Package permission mirrors the grant graph into a casbin enforcer for
// inspection and export. Request gating never reads from the mirror.
package permission

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/orris-inc/warden/internal/domain/access"
	"github.com/orris-inc/warden/internal/shared/logger"
)

const modelText = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj
`

const (
	ruleTable  = "casbin_rule"
	userPrefix = "user:"
	rolePrefix = "role:"
)

func userSubject(id uint) string { return userPrefix + strconv.FormatUint(uint64(id), 10) }
func roleSubject(id uint) string { return rolePrefix + strconv.FormatUint(uint64(id), 10) }

// Mirror holds users as user:<id>, roles as role:<id> and operation codes
// as objects.
type Mirror struct {
	db       *gorm.DB
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewMirror stores rules in the casbin_rule table of db and loads whatever
// is already there.
func NewMirror(db *gorm.DB, log logger.Interface) (*Mirror, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Mirror{
		db:       db,
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Sync replaces every stored rule with the edges of snap. It must not hold
// two connections at once: SQLite pools have a single one.
func (m *Mirror) Sync(snap *access.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	grouping := make([][]string, 0, len(snap.Assignments))
	for _, edge := range snap.Assignments {
		grouping = append(grouping, []string{userSubject(edge.UserID), roleSubject(edge.RoleID)})
	}
	policies := make([][]string, 0, len(snap.Authorizations))
	for _, edge := range snap.Authorizations {
		policies = append(policies, []string{roleSubject(edge.RoleID), edge.OperationCode})
	}

	if err := m.db.Table(ruleTable).Where("1 = 1").Delete(&gormadapter.CasbinRule{}).Error; err != nil {
		m.logger.Errorw("failed to clear stored rules", "error", err)
		return fmt.Errorf("failed to clear stored rules: %w", err)
	}
	m.enforcer.ClearPolicy()
	m.enforcer.EnableAutoSave(true)

	if len(grouping) > 0 {
		if _, err := m.enforcer.AddGroupingPolicies(grouping); err != nil {
			return fmt.Errorf("failed to add role links: %w", err)
		}
	}
	if len(policies) > 0 {
		if _, err := m.enforcer.AddPolicies(policies); err != nil {
			return fmt.Errorf("failed to add grants: %w", err)
		}
	}

	m.logger.Infow("policy mirror synced",
		"role_links", len(grouping),
		"grants", len(policies))
	return nil
}

// Check reports whether the mirrored rules grant opCode to userID.
func (m *Mirror) Check(userID uint, opCode string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	allowed, err := m.enforcer.Enforce(userSubject(userID), opCode)
	if err != nil {
		m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "op_code", opCode)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// CodesFor returns the sorted distinct codes reachable from userID.
func (m *Mirror) CodesFor(userID uint) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rules, err := m.enforcer.GetImplicitPermissionsForUser(userSubject(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions for user: %w", err)
	}

	seen := map[string]bool{}
	codes := make([]string, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 2 || seen[rule[1]] {
			continue
		}
		seen[rule[1]] = true
		codes = append(codes, rule[1])
	}
	sort.Strings(codes)
	return codes, nil
}

// LoadPolicy rereads the stored rules.
func (m *Mirror) LoadPolicy() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}
	return nil
}

func subjectID(subject, prefix string) (uint, bool) {
	if !strings.HasPrefix(subject, prefix) {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(subject, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
