package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// View names of cached read models
const (
	ViewPendingReturns = "returns:pending"
)

// ViewCache stores rendered read models per team. Values are JSON encoded.
// A miss is reported as (false, nil); only transport failures are errors.
type ViewCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	// InvalidateTeam drops every view of the team and every cross-team view
	InvalidateTeam(ctx context.Context, teamID uuid.UUID) error
}

// TeamKey is the cache key of a view scoped to one team
func TeamKey(teamID uuid.UUID, view string) string {
	return fmt.Sprintf("team:%s:%s", teamID, view)
}

// GlobalKey is the cache key of a view spanning every team
func GlobalKey(view string) string {
	return "all:" + view
}

// Noop is a ViewCache that never hits; used when Redis is not configured
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}) error         { return nil }
func (Noop) InvalidateTeam(context.Context, uuid.UUID) error        { return nil }
