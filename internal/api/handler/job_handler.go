package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uqcareers/jobboard-api/internal/api/metrics"
	"github.com/uqcareers/jobboard-api/internal/core/domain"
	"github.com/uqcareers/jobboard-api/internal/core/ports"
)

// JobHandler serves catalog reads.
type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List returns the postings visible to the caller's role.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobService.List(c.Request().Context(), p)
	if err != nil {
		return err
	}

	metrics.JobQueriesTotal.WithLabelValues("list", scopeLabel(p, domain.OpListJobs)).Inc()
	return c.JSON(http.StatusOK, jobs)
}

// Search returns postings matching the keyword within the caller's scope.
//
// @Summary      Search job postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query     string  false  "Case-insensitive substring matched against title and org"
// @Success      200      {array}   domain.Job
// @Failure      401      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /jobs/search [get]
func (h *JobHandler) Search(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobService.Search(c.Request().Context(), p, c.QueryParam("keyword"))
	if err != nil {
		return err
	}

	metrics.JobQueriesTotal.WithLabelValues("search", scopeLabel(p, domain.OpSearchJobs)).Inc()
	return c.JSON(http.StatusOK, jobs)
}

// scopeLabel renders the principal's scope for the metric label. Denials are
// impossible for catalog reads, so a policy error just falls back to the
// role string.
func scopeLabel(p domain.Principal, op domain.Operation) string {
	scope, err := domain.ScopeFor(p.Role, op)
	if err != nil {
		return string(p.Role)
	}
	if scope.Unrestricted() {
		return "unrestricted"
	}
	return scope.Org
}
