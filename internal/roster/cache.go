package roster

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskboard/internal/model"
	pkgLog "taskboard/pkg/log"
)

const (
	membersKey  = "members"
	projectsKey = "projects"
)

// CachedSource wraps a Source with a TTL cache so bursts of extraction
// calls do not hammer the board API. Snapshots go a little stale within
// the TTL; extraction tolerates that.
type CachedSource struct {
	inner    Source
	members  *expirable.LRU[string, []model.TeamMember]
	projects *expirable.LRU[string, []model.ProjectRef]
	l        pkgLog.Logger
}

// NewCachedSource wraps inner with the given snapshot TTL.
func NewCachedSource(inner Source, ttl time.Duration, l pkgLog.Logger) *CachedSource {
	return &CachedSource{
		inner:    inner,
		members:  expirable.NewLRU[string, []model.TeamMember](1, nil, ttl),
		projects: expirable.NewLRU[string, []model.ProjectRef](1, nil, ttl),
		l:        l,
	}
}

// ListMembers returns the cached roster, refreshing it on expiry.
func (c *CachedSource) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	if cached, ok := c.members.Get(membersKey); ok {
		return cached, nil
	}

	members, err := c.inner.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	c.members.Add(membersKey, members)
	c.l.Debugf(ctx, "roster cache: refreshed %d members", len(members))
	return members, nil
}

// ListProjects returns the cached project list, refreshing it on expiry.
func (c *CachedSource) ListProjects(ctx context.Context) ([]model.ProjectRef, error) {
	if cached, ok := c.projects.Get(projectsKey); ok {
		return cached, nil
	}

	projects, err := c.inner.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	c.projects.Add(projectsKey, projects)
	c.l.Debugf(ctx, "roster cache: refreshed %d projects", len(projects))
	return projects, nil
}
