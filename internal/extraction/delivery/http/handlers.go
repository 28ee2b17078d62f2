package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/notify"
	"taskboard/internal/roster"
	"taskboard/internal/taskstore"
	"taskboard/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from free text
// @Description Parses natural language into 1..10 structured task proposals and creates them on the board unless dry_run is set.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Text to extract tasks from"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/extraction/tasks [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.ScopeFromContext(c)
	members, projects := h.loadRoster(ctx)

	batch := h.uc.ExtractTasks(ctx, sc, req.toInput(members, projects))
	h.applyAssignmentFallback(batch.Tasks, sc)

	if req.DryRun || h.store == nil {
		response.OK(c, h.newExtractResp(batch, nil))
		return
	}

	created := h.persistBatch(ctx, batch.Tasks)
	response.OK(c, h.newExtractResp(batch, created))
}

// ExtractSingle godoc
// @Summary     Extract a single task from free text
// @Description Like /tasks but returns only the first proposal, for quick-add flows.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Text to extract a task from"
// @Success     200 {object} extractSingleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/extraction/task [POST]
func (h *handler) ExtractSingle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.ScopeFromContext(c)
	members, projects := h.loadRoster(ctx)

	task := h.uc.ExtractSingleTask(ctx, sc, req.toInput(members, projects))
	tasks := []model.ParsedTask{task}
	h.applyAssignmentFallback(tasks, sc)
	task = tasks[0]

	if req.DryRun || h.store == nil {
		response.OK(c, h.newExtractSingleResp(task, nil))
		return
	}

	created := h.persistBatch(ctx, tasks)
	if len(created) == 0 {
		response.OK(c, h.newExtractSingleResp(task, nil))
		return
	}
	response.OK(c, h.newExtractSingleResp(task, &created[0]))
}

// Triage godoc
// @Summary     Triage an email
// @Description Classifies an email into a category, routing role, task proposal, and draft reply. Preview only, nothing is persisted.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body triageReq true "Email to triage"
// @Success     200 {object} triageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/extraction/triage [POST]
func (h *handler) Triage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTriageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	members, _ := h.loadRoster(ctx)

	sc := middleware.ScopeFromContext(c)
	result, err := h.uc.TriageEmail(ctx, sc, req.toInput(members))
	if err != nil {
		h.l.Errorf(ctx, "uc.TriageEmail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTriageResp(result, members))
}

// loadRoster fetches the member and project snapshots. Fetch failures
// degrade to empty snapshots so extraction still runs.
func (h *handler) loadRoster(ctx context.Context) ([]model.TeamMember, []model.ProjectRef) {
	members, err := h.rosterSrc.ListMembers(ctx)
	if err != nil {
		h.l.Warnf(ctx, "roster: members fetch failed: %v", err)
		members = nil
	}
	// The agent account never receives extracted tasks.
	members = roster.Filter(members, roster.ExcludeRole(model.RoleAgent))

	projects, err := h.rosterSrc.ListProjects(ctx)
	if err != nil {
		h.l.Warnf(ctx, "roster: projects fetch failed: %v", err)
		projects = nil
	}
	return members, projects
}

// applyAssignmentFallback fills unassigned tasks per the configured
// policy. "none" leaves them visibly unassigned.
func (h *handler) applyAssignmentFallback(tasks []model.ParsedTask, sc model.Scope) {
	for i := range tasks {
		if tasks[i].AssigneeID != nil {
			continue
		}
		switch h.policy.AssignmentFallback {
		case assignRequester:
			if sc.UserID != "" {
				id := sc.UserID
				tasks[i].AssigneeID = &id
			}
		case assignPlaceholder:
			if h.policy.PlaceholderAssigneeID != "" {
				id := h.policy.PlaceholderAssigneeID
				tasks[i].AssigneeID = &id
			}
		}
	}
}

// persistBatch creates the proposals on the board and notifies assignees.
func (h *handler) persistBatch(ctx context.Context, tasks []model.ParsedTask) []model.Task {
	opts := make([]taskstore.CreateTaskOptions, len(tasks))
	for i, t := range tasks {
		opts[i] = taskstore.FromParsedTask(t, taskSource)
	}

	created, err := h.store.CreateTasksBatch(ctx, opts)
	if err != nil {
		h.l.Errorf(ctx, "taskstore.CreateTasksBatch: %v", err)
		return nil
	}

	if h.notifier != nil {
		for _, task := range created {
			if task.AssigneeID == nil {
				continue
			}
			h.notifier.Notify(ctx, *task.AssigneeID, notify.Payload{
				Title: "New task assigned",
				Body:  task.Title,
				URL:   task.URL,
			})
		}
	}
	return created
}
