package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"shieldtrack/internal/shared/constants"
	"shieldtrack/internal/shared/logger"
)

// InitAccessPolicies seeds the role/resource/action table. This is the coarse
// route-level gate; use cases remain authoritative for tenancy and the finer
// rules (self access, parent project state, cross-client checks), so these
// policies only have to be at least as permissive as the domain guard.
func InitAccessPolicies(enforcer *casbin.Enforcer, log logger.Interface) error {
	allRoles := []string{"owner", "platform_admin", "client_admin", "area_admin", "analyst", "viewer"}
	writerRoles := []string{"owner", "platform_admin", "client_admin", "area_admin", "analyst"}
	closerRoles := []string{"owner", "client_admin", "area_admin"}
	adminRoles := []string{"owner", "platform_admin", "client_admin"}
	globalRoles := []string{"owner", "platform_admin"}

	var policies [][]string

	// Everyone reads what their scope admits; out-of-scope rows are filtered
	// lower down. User reads are open to everyone because self access is
	// decided per row in the use case.
	for _, role := range allRoles {
		for _, resource := range []string{
			constants.ResourceClient,
			constants.ResourceArea,
			constants.ResourceProject,
			constants.ResourceFinding,
			constants.ResourceUser,
		} {
			policies = append(policies, []string{role, resource, constants.ActionRead})
		}
	}

	for _, role := range adminRoles {
		policies = append(policies, []string{role, constants.ResourceClient, constants.ActionWrite})
		policies = append(policies, []string{role, constants.ResourceUser, constants.ActionWrite})
	}

	for _, role := range []string{"owner", "platform_admin", "client_admin", "area_admin"} {
		policies = append(policies, []string{role, constants.ResourceArea, constants.ActionWrite})
	}

	for _, role := range writerRoles {
		policies = append(policies, []string{role, constants.ResourceProject, constants.ActionWrite})
		policies = append(policies, []string{role, constants.ResourceFinding, constants.ActionWrite})
	}

	for _, role := range closerRoles {
		policies = append(policies, []string{role, constants.ResourceProject, constants.ActionClose})
	}

	for _, role := range globalRoles {
		policies = append(policies, []string{role, constants.ResourceSettings, constants.ActionRead})
		policies = append(policies, []string{role, constants.ResourceSettings, constants.ActionWrite})
	}

	// Hard deletes stay with the owner role.
	for _, resource := range []string{
		constants.ResourceClient,
		constants.ResourceArea,
		constants.ResourceProject,
		constants.ResourceFinding,
		constants.ResourceUser,
	} {
		policies = append(policies, []string{"owner", resource, constants.ActionDelete})
	}

	for _, policy := range policies {
		if _, err := enforcer.AddPolicy(policy); err != nil {
			log.Errorw("failed to add access policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Error("failed to save access policies", "error", err)
		return fmt.Errorf("failed to save access policies: %w", err)
	}

	log.Info("access policies initialized successfully")
	return nil
}
