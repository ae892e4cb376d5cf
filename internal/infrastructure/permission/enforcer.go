package permission

import (
	"fmt"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/folio-hq/folio/internal/shared/logger"
)

const (
	RoleAdmin = "admin"

	ObjectAdmin = "admin"
	ActionRead  = "read"
	ActionWrite = "write"
)

// Subjects are lowercased email addresses so admins can be granted before
// their account exists.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table of db.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
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

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Bootstrap grants the admin role full access to the admin surface and
// assigns it to the configured emails.
func (e *Enforcer) Bootstrap(adminEmails []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(RoleAdmin, ObjectAdmin+"/*", "*"); err != nil {
		return fmt.Errorf("failed to add admin policy: %w", err)
	}

	granted := 0
	for _, email := range adminEmails {
		subject := subjectFor(email)
		if subject == "" {
			continue
		}
		added, err := e.enforcer.AddRoleForUser(subject, RoleAdmin)
		if err != nil {
			e.logger.Errorw("failed to add admin role", "error", err, "email", subject)
			return fmt.Errorf("failed to add admin role: %w", err)
		}
		if added {
			granted++
		}
	}

	e.logger.Infow("permissions bootstrapped", "admins", len(adminEmails), "newly_granted", granted)
	return nil
}

func (e *Enforcer) Enforce(email, object, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subjectFor(email), object, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "email", email, "object", object, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

func (e *Enforcer) AddRoleForUser(email, role string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddRoleForUser(subjectFor(email), role); err != nil {
		e.logger.Errorw("failed to add role for user", "error", err, "email", email, "role", role)
		return fmt.Errorf("failed to add role for user: %w", err)
	}
	return nil
}

func (e *Enforcer) DeleteRoleForUser(email, role string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.DeleteRoleForUser(subjectFor(email), role); err != nil {
		e.logger.Errorw("failed to delete role for user", "error", err, "email", email, "role", role)
		return fmt.Errorf("failed to delete role for user: %w", err)
	}
	return nil
}

func (e *Enforcer) GetRolesForUser(email string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	roles, err := e.enforcer.GetRolesForUser(subjectFor(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get roles for user: %w", err)
	}
	return roles, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}

func subjectFor(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
