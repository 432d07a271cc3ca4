package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mailops-backend/internal/cache"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/metrics"
	"mailops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// payloadRules maps every payload column of a kind to its validator tag
var payloadRules = map[models.ResourceKind]map[string]string{
	models.ResourceKindServer: {
		"ip_address": "required,ip",
		"provider":   "max=100",
		"hostname":   "max=255",
		"notes":      "max=1000",
	},
	models.ResourceKindProxy: {
		"connection_string": "required,max=500",
		"provider":          "max=100",
		"notes":             "max=1000",
	},
	models.ResourceKindRDP: {
		"alias":    "required,max=100",
		"host":     "max=255",
		"username": "max=100",
		"notes":    "max=1000",
	},
	models.ResourceKindSeedEmail: {
		"email_address":  "required,email,max=255",
		"provider":       "max=100",
		"recovery_email": "omitempty,email,max=255",
		"notes":          "max=1000",
	},
}

// ResourceListQuery narrows a resource listing
type ResourceListQuery struct {
	Status string
	// TeamID is honoured for admins only; everyone else is pinned to their own team
	TeamID *uuid.UUID
	Limit  int
	Offset int
}

// ResourceService handles create, read, payload edit and delete of resources.
// Status changes go through LifecycleService.
type ResourceService struct {
	callers   *CallerResolver
	resources repository.ResourceRepositoryInterface
	views     cache.ViewCache
	validator *validator.Validate
}

// NewResourceService creates a new resource service
func NewResourceService(callers *CallerResolver, resources repository.ResourceRepositoryInterface, views cache.ViewCache, validator *validator.Validate) *ResourceService {
	if views == nil {
		views = cache.Noop{}
	}
	return &ResourceService{
		callers:   callers,
		resources: resources,
		views:     views,
		validator: validator,
	}
}

// Create stores a new active resource owned by the caller in the caller's team
func (s *ResourceService) Create(ctx context.Context, kind models.ResourceKind, fields map[string]string) (models.Resource, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireTeamMember(caller); err != nil {
		return nil, err
	}

	resource, err := s.build(caller, kind, fields)
	if err != nil {
		return nil, err
	}

	existing, err := s.resources.ExistingKeys(ctx, kind, *caller.TeamID, []string{resource.NaturalKey()})
	if err != nil {
		return nil, apperrors.NewPersistenceError("check existing "+kind.TableName(), err)
	}
	if len(existing) > 0 {
		return nil, apperrors.ErrResourceExists
	}

	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, apperrors.NewPersistenceError("create "+kind.TableName(), err)
	}
	invalidateViews(ctx, s.views, *caller.TeamID)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"kind":        kind,
		"resource_id": resource.GetCore().ID,
	}).Info("resource created")
	return resource, nil
}

// Get returns one resource the caller may see
func (s *ResourceService) Get(ctx context.Context, kind models.ResourceKind, id uuid.UUID) (models.Resource, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireApproved(caller); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, apperrors.ErrInvalidResourceKind
	}

	resource, err := s.resources.GetByID(ctx, kind, id)
	if err != nil {
		return nil, lookupError("get "+kind.TableName(), err)
	}
	if err := authorizeResource(caller, resource.GetCore()); err != nil {
		return nil, err
	}
	return resource, nil
}

// List returns the resources of a kind visible to the caller: every team for admins,
// the team for team leaders, the caller's own resources for mailers
func (s *ResourceService) List(ctx context.Context, kind models.ResourceKind, query ResourceListQuery) ([]models.Resource, int64, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := requireApproved(caller); err != nil {
		return nil, 0, err
	}
	if !kind.IsValid() {
		return nil, 0, apperrors.ErrInvalidResourceKind
	}

	filter := repository.ResourceFilter{Limit: query.Limit, Offset: query.Offset}
	if query.Status != "" {
		status, err := models.ParseResourceStatus(kind, query.Status)
		if err != nil {
			return nil, 0, apperrors.ErrInvalidStatus
		}
		filter.Status = &status
	}
	switch caller.Role {
	case models.RoleAdmin:
		filter.TeamID = query.TeamID
	case models.RoleTeamLeader:
		filter.TeamID = caller.TeamID
	default:
		filter.TeamID = caller.TeamID
		filter.OwnerID = &caller.ID
	}

	resources, total, err := s.resources.List(ctx, kind, filter)
	if err != nil {
		return nil, 0, apperrors.NewPersistenceError("list "+kind.TableName(), err)
	}
	return resources, total, nil
}

// Update edits payload columns. Status, owner and team are not payload and cannot be set here.
func (s *ResourceService) Update(ctx context.Context, kind models.ResourceKind, id uuid.UUID, fields map[string]string) (models.Resource, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireApproved(caller); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, apperrors.ErrInvalidResourceKind
	}
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("", "no fields to update")
	}
	if err := checkFieldNames(kind, fields); err != nil {
		return nil, err
	}

	resource, err := s.resources.GetByID(ctx, kind, id)
	if err != nil {
		return nil, lookupError("get "+kind.TableName(), err)
	}
	core := resource.GetCore()
	if err := authorizeResource(caller, core); err != nil {
		return nil, err
	}

	oldKey := resource.NaturalKey()
	resource.SetPayload(fields)
	if err := s.validatePayload(kind, resource.Payload()); err != nil {
		return nil, err
	}

	if newKey := resource.NaturalKey(); newKey != oldKey {
		existing, err := s.resources.ExistingKeys(ctx, kind, core.TeamID, []string{newKey})
		if err != nil {
			return nil, apperrors.NewPersistenceError("check existing "+kind.TableName(), err)
		}
		if len(existing) > 0 {
			return nil, apperrors.ErrResourceExists
		}
	}

	payload := resource.Payload()
	updates := make(map[string]interface{}, len(fields))
	for column := range fields {
		updates[column] = payload[column]
	}
	affected, err := s.resources.UpdateFields(ctx, kind, id, scopeTeam(caller, core), updates)
	if err != nil {
		return nil, apperrors.NewPersistenceError("update "+kind.TableName(), err)
	}
	if affected == 0 {
		return nil, apperrors.ErrResourceNotFound
	}
	invalidateViews(ctx, s.views, core.TeamID)

	updated, err := s.resources.GetByID(ctx, kind, id)
	if err != nil {
		return nil, lookupError("reload "+kind.TableName(), err)
	}
	return updated, nil
}

// Delete hard-deletes a resource
func (s *ResourceService) Delete(ctx context.Context, kind models.ResourceKind, id uuid.UUID) error {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return err
	}
	if err := requireApproved(caller); err != nil {
		return err
	}
	if !kind.IsValid() {
		return apperrors.ErrInvalidResourceKind
	}

	resource, err := s.resources.GetByID(ctx, kind, id)
	if err != nil {
		return lookupError("get "+kind.TableName(), err)
	}
	core := resource.GetCore()
	if err := authorizeResource(caller, core); err != nil {
		return err
	}

	affected, err := s.resources.Delete(ctx, kind, id, scopeTeam(caller, core))
	if err != nil {
		return apperrors.NewPersistenceError("delete "+kind.TableName(), err)
	}
	if affected == 0 {
		return apperrors.ErrResourceNotFound
	}
	invalidateViews(ctx, s.views, core.TeamID)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"kind":        kind,
		"resource_id": id,
	}).Info("resource deleted")
	return nil
}

// build turns submitted payload fields into a validated, unsaved resource owned by the caller
func (s *ResourceService) build(caller *Caller, kind models.ResourceKind, fields map[string]string) (models.Resource, error) {
	resource := models.NewResource(kind)
	if resource == nil {
		return nil, apperrors.ErrInvalidResourceKind
	}
	if err := checkFieldNames(kind, fields); err != nil {
		return nil, err
	}

	resource.SetPayload(fields)
	if err := s.validatePayload(kind, resource.Payload()); err != nil {
		return nil, err
	}

	core := resource.GetCore()
	core.ID = uuid.New()
	core.OwnerMailerID = caller.ID
	core.TeamID = *caller.TeamID
	core.Status = models.StatusActive
	return resource, nil
}

// validatePayload runs the kind's rules over normalised payload values, reporting the first
// failing column in column order
func (s *ResourceService) validatePayload(kind models.ResourceKind, payload map[string]string) error {
	rules := payloadRules[kind]
	for _, column := range kind.PayloadColumns() {
		if err := s.validator.Var(payload[column], rules[column]); err != nil {
			return apperrors.NewValidationError(column, describeRule(rules[column], err))
		}
	}
	return nil
}

func checkFieldNames(kind models.ResourceKind, fields map[string]string) error {
	rules := payloadRules[kind]
	var unknown []string
	for name := range fields {
		if _, ok := rules[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return apperrors.NewValidationError(unknown[0], fmt.Sprintf("not an editable field of %s", kind))
}

func describeRule(rule string, err error) string {
	var fieldErrs validator.ValidationErrors
	if ve, ok := err.(validator.ValidationErrors); ok {
		fieldErrs = ve
	}
	if len(fieldErrs) == 0 {
		return "invalid value"
	}
	switch tag := fieldErrs[0].Tag(); tag {
	case "required":
		return "is required"
	case "ip":
		return "must be an IP address"
	case "email":
		return "must be an email address"
	case "max":
		return "must be at most " + fieldErrs[0].Param() + " characters"
	default:
		return "failed " + strings.TrimSpace(tag) + " check in " + rule
	}
}

// invalidateViews drops the team's cached views; a cache outage is logged and counted, never returned
func invalidateViews(ctx context.Context, views cache.ViewCache, teamID uuid.UUID) {
	if err := views.InvalidateTeam(ctx, teamID); err != nil {
		metrics.CacheInvalidationFailures.Inc()
		logger.WithContext(ctx).WithError(err).WithField("team_id", teamID).Warn("view cache invalidation failed")
	}
}
