package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mailops-backend/internal/cache"
	"mailops-backend/internal/database/models"
	apperrors "mailops-backend/internal/errors"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/metrics"
	"mailops-backend/internal/repository"

	"github.com/google/uuid"
)

// ResultCode classifies the outcome of a lifecycle operation
type ResultCode string

const (
	CodeOK               ResultCode = "ok"
	CodeUnauthenticated  ResultCode = "unauthenticated"
	CodeForbidden        ResultCode = "forbidden"
	CodeNotFound         ResultCode = "not_found"
	CodeInvalidRequest   ResultCode = "invalid_request"
	CodeInvalidState     ResultCode = "invalid_state"
	CodeAlreadyProcessed ResultCode = "already_processed"
	CodePersistence      ResultCode = "persistence_error"
)

// Lifecycle operation names, used in logs and metrics
const (
	OpRequestReturn = "request_return"
	OpApproveReturn = "approve_return"
	OpRejectReturn  = "reject_return"
	OpSetStatus     = "set_status"
)

// Result is the outcome of a lifecycle operation. Failures are values, not Go errors.
type Result struct {
	Success       bool                  `json:"success"`
	Code          ResultCode            `json:"code"`
	Message       string                `json:"message"`
	CurrentStatus models.ResourceStatus `json:"current_status,omitempty"`
	Data          models.Resource       `json:"data,omitempty" swaggertype:"object"`
}

// resultFromError converts the error taxonomy into a failed Result
func resultFromError(err error) Result {
	res := Result{Success: false, Message: err.Error()}

	var invalidState *apperrors.InvalidStateError
	var alreadyProcessed *apperrors.AlreadyProcessedError
	switch {
	case apperrors.IsAuthentication(err):
		res.Code = CodeUnauthenticated
	case apperrors.IsAuthorization(err):
		res.Code = CodeForbidden
	case apperrors.IsNotFound(err):
		res.Code = CodeNotFound
	case apperrors.IsValidation(err):
		res.Code = CodeInvalidRequest
	case errors.As(err, &invalidState):
		res.Code = CodeInvalidState
		res.CurrentStatus = models.ResourceStatus(invalidState.Current)
	case errors.As(err, &alreadyProcessed):
		res.Code = CodeAlreadyProcessed
		res.CurrentStatus = models.ResourceStatus(alreadyProcessed.Current)
	default:
		res.Code = CodePersistence
	}
	return res
}

// transitionRule describes one guarded status transition. The checks run in
// field order and the first failure decides the result.
type transitionRule struct {
	operation string
	// checkRole runs before the resource is read
	checkRole func(c *Caller) error
	// checkScope runs against the stored resource
	checkScope func(c *Caller, core *models.ResourceCore) error
	// target returns the destination for a resource currently in from
	target func(kind models.ResourceKind, from models.ResourceStatus) (models.ResourceStatus, error)
}

// LifecycleService is the resource lifecycle engine: guarded status transitions
// committed through conditional writes.
type LifecycleService struct {
	callers   *CallerResolver
	resources repository.ResourceRepositoryInterface
	views     cache.ViewCache
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(callers *CallerResolver, resources repository.ResourceRepositoryInterface, views cache.ViewCache) *LifecycleService {
	if views == nil {
		views = cache.Noop{}
	}
	return &LifecycleService{
		callers:   callers,
		resources: resources,
		views:     views,
	}
}

// RequestReturn hands a resource back. Servers wait for a team leader in
// pending_return_approval; every other kind is returned immediately.
func (s *LifecycleService) RequestReturn(ctx context.Context, kind models.ResourceKind, id uuid.UUID) Result {
	return s.apply(ctx, kind, id, transitionRule{
		operation:  OpRequestReturn,
		checkRole:  requireApproved,
		checkScope: authorizeResource,
		target: func(kind models.ResourceKind, from models.ResourceStatus) (models.ResourceStatus, error) {
			if from != models.StatusActive {
				return "", apperrors.NewInvalidStateError(string(from), string(models.StatusActive))
			}
			if kind.RequiresReturnApproval() {
				return models.StatusPendingReturnApproval, nil
			}
			return models.StatusReturned, nil
		},
	})
}

// ApproveReturn completes a pending server return
func (s *LifecycleService) ApproveReturn(ctx context.Context, kind models.ResourceKind, id uuid.UUID) Result {
	return s.apply(ctx, kind, id, decisionRule(OpApproveReturn, models.StatusReturned))
}

// RejectReturn puts a pending server back into service
func (s *LifecycleService) RejectReturn(ctx context.Context, kind models.ResourceKind, id uuid.UUID) Result {
	return s.apply(ctx, kind, id, decisionRule(OpRejectReturn, models.StatusActive))
}

func decisionRule(operation string, to models.ResourceStatus) transitionRule {
	return transitionRule{
		operation: operation,
		checkRole: requireLeader,
		checkScope: func(c *Caller, core *models.ResourceCore) error {
			if !c.InTeam(core.TeamID) {
				return apperrors.ErrForbiddenTeamMismatch
			}
			return nil
		},
		target: func(_ models.ResourceKind, from models.ResourceStatus) (models.ResourceStatus, error) {
			if from != models.StatusPendingReturnApproval {
				return "", apperrors.NewInvalidStateError(string(from), string(models.StatusPendingReturnApproval))
			}
			return to, nil
		},
	}
}

// SetStatus moves a resource between the operational states of its kind.
// The return workflow states can be neither entered nor left this way.
func (s *LifecycleService) SetStatus(ctx context.Context, kind models.ResourceKind, id uuid.UUID, status string) Result {
	return s.apply(ctx, kind, id, transitionRule{
		operation: OpSetStatus,
		checkRole: func(c *Caller) error {
			if err := requireApproved(c); err != nil {
				return err
			}
			_, err := parseOperationalStatus(kind, status)
			return err
		},
		checkScope: authorizeResource,
		target: func(kind models.ResourceKind, from models.ResourceStatus) (models.ResourceStatus, error) {
			if !from.IsOperational() {
				return "", apperrors.NewInvalidStateError(string(from), "an operational status")
			}
			return parseOperationalStatus(kind, status)
		},
	})
}

func parseOperationalStatus(kind models.ResourceKind, status string) (models.ResourceStatus, error) {
	to, err := models.ParseResourceStatus(kind, status)
	if err != nil {
		return "", apperrors.ErrInvalidStatus
	}
	if !to.IsOperational() {
		return "", apperrors.NewValidationError("status", fmt.Sprintf("%s is only reachable through the return workflow", to))
	}
	return to, nil
}

func (s *LifecycleService) apply(ctx context.Context, kind models.ResourceKind, id uuid.UUID, rule transitionRule) Result {
	res := s.run(ctx, kind, id, rule)

	metrics.LifecycleTransitions.WithLabelValues(rule.operation, string(kind), string(res.Code)).Inc()
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"operation":   rule.operation,
		"kind":        kind,
		"resource_id": id,
		"code":        res.Code,
	})
	switch res.Code {
	case CodeOK:
		log.WithField("status", res.CurrentStatus).Info("lifecycle transition committed")
	case CodePersistence:
		log.WithField("error", res.Message).Error("lifecycle transition failed")
	default:
		log.WithField("reason", res.Message).Warn("lifecycle transition refused")
	}
	return res
}

func (s *LifecycleService) run(ctx context.Context, kind models.ResourceKind, id uuid.UUID, rule transitionRule) Result {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return resultFromError(err)
	}
	if err := rule.checkRole(caller); err != nil {
		return resultFromError(err)
	}
	if !kind.IsValid() {
		return resultFromError(apperrors.ErrInvalidResourceKind)
	}

	resource, err := s.resources.GetByID(ctx, kind, id)
	if err != nil {
		return resultFromError(lookupError("load "+kind.TableName(), err))
	}
	core := resource.GetCore()
	if err := rule.checkScope(caller, core); err != nil {
		return resultFromError(err)
	}

	from := core.Status
	to, err := rule.target(kind, from)
	if err != nil {
		return resultFromError(err)
	}

	affected, err := s.resources.TransitionStatus(ctx, kind, id, scopeTeam(caller, core), from, to)
	if err != nil {
		return resultFromError(apperrors.NewPersistenceError("update "+kind.TableName(), err))
	}
	if affected == 0 {
		// Lost a race: report what the winner left behind
		current, err := s.resources.GetByID(ctx, kind, id)
		if err != nil {
			return resultFromError(lookupError("reload "+kind.TableName(), err))
		}
		invalidateViews(ctx, s.views, core.TeamID)
		return resultFromError(apperrors.NewAlreadyProcessedError(string(current.GetCore().Status)))
	}

	core.Status = to
	core.UpdatedAt = time.Now()
	invalidateViews(ctx, s.views, core.TeamID)

	return Result{
		Success:       true,
		Code:          CodeOK,
		Message:       fmt.Sprintf("%s is now %s", kind, to),
		CurrentStatus: to,
		Data:          resource,
	}
}

// ListPendingReturns returns the servers awaiting a return decision: the caller's team for
// team leaders, every team for admins
func (s *LifecycleService) ListPendingReturns(ctx context.Context) ([]models.Server, error) {
	caller, err := s.callers.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	var key string
	filter := repository.ResourceFilter{}
	pending := models.StatusPendingReturnApproval
	filter.Status = &pending
	switch {
	case caller.IsAdmin():
		key = cache.GlobalKey(cache.ViewPendingReturns)
	case requireLeader(caller) == nil:
		key = cache.TeamKey(*caller.TeamID, cache.ViewPendingReturns)
		filter.TeamID = caller.TeamID
	default:
		return nil, apperrors.ErrForbiddenRole
	}

	log := logger.WithContext(ctx).WithField("view", key)
	var servers []models.Server
	hit, err := s.views.Get(ctx, key, &servers)
	if err != nil {
		log.WithError(err).Warn("view cache read failed")
	}
	if hit {
		return servers, nil
	}

	resources, _, err := s.resources.List(ctx, models.ResourceKindServer, filter)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list pending returns", err)
	}
	servers = make([]models.Server, 0, len(resources))
	for _, r := range resources {
		if server, ok := r.(*models.Server); ok {
			servers = append(servers, *server)
		}
	}

	if err := s.views.Set(ctx, key, servers); err != nil {
		log.WithError(err).Warn("view cache write failed")
	}
	return servers, nil
}
