package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

// aclModel matches a role against (object, action) pairs. Relationship
// checks such as "is the assignee" are left to the workflow.
const aclModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds a casbin enforcer. With a nil db the policy lives in
// memory only; otherwise it is stored in casbin_rule through the gorm adapter.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(aclModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	var enforcer *casbin.Enforcer
	if db == nil {
		enforcer, err = casbin.NewEnforcer(m)
	} else {
		adapter, adapterErr := gormadapter.NewAdapterByDB(db)
		if adapterErr != nil {
			return nil, fmt.Errorf("failed to create casbin adapter: %w", adapterErr)
		}
		enforcer, err = casbin.NewEnforcer(m, adapter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if db != nil {
		if err := enforcer.LoadPolicy(); err != nil {
			return nil, fmt.Errorf("failed to load policy: %w", err)
		}
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Enforce reports whether role may perform action on resource.
func (e *Enforcer) Enforce(role authorization.Role, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role.String(), "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// Sync replaces every stored rule for the resources named in policies.
func (e *Enforcer) Sync(policies []Policy) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	resources := map[string]struct{}{}
	rules := make([][]string, 0, len(policies))
	for _, p := range policies {
		resources[p.Resource] = struct{}{}
		rules = append(rules, p.rule())
	}

	for resource := range resources {
		if _, err := e.enforcer.RemoveFilteredPolicy(1, resource); err != nil {
			e.logger.Errorw("failed to clear policies", "error", err, "resource", resource)
			return fmt.Errorf("failed to clear policies for %s: %w", resource, err)
		}
	}
	if len(rules) > 0 {
		if _, err := e.enforcer.AddPolicies(rules); err != nil {
			e.logger.Errorw("failed to add policies", "error", err)
			return fmt.Errorf("failed to add policies: %w", err)
		}
	}

	e.logger.Infow("permission policies synced", "count", len(rules), "resources", len(resources))
	return nil
}
