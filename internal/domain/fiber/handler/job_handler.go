package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"web3jobs/internal/apperror"
	"web3jobs/internal/dto"
	"web3jobs/internal/filter"
	"web3jobs/internal/middleware"
	"web3jobs/internal/model"
	"web3jobs/internal/response"
	"web3jobs/internal/usecase"
	"web3jobs/internal/util"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/jobs", h.List)
	app.Get("/jobs/:id", h.Get)
	app.Post("/jobs", middleware.RequireAuth(), h.Create)
	app.Put("/jobs/:id", middleware.RequireAuth(), h.Update)
	app.Delete("/jobs/:id", middleware.RequireAuth(), h.Delete)
	app.Patch("/jobs/:id/publish", middleware.RequireAuth(), h.TogglePublish)
	app.Patch("/jobs/:id/verify", middleware.RequireAuth(), h.Verify)
	app.Get("/dashboard/jobs", middleware.RequireAuth(), h.Dashboard)
	app.Get("/admin/jobs", middleware.RequireAuth(), h.AdminList)
}

// List serves the public board: approved, published postings reduced by
// the filter params and paginated.
func (h *JobHandler) List(c *fiber.Ctx) error {
	spec := specFromQuery(c)

	jobs, err := h.uc.ListPublic(spec)
	if err != nil {
		return h.fail(c, err)
	}

	page, pageSize := pageParams(c)
	total := int64(len(jobs))
	start := (page - 1) * pageSize
	if start > len(jobs) {
		start = len(jobs)
	}
	end := start + pageSize
	if end > len(jobs) {
		end = len(jobs)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get job listings",
		Data:       dto.NewJobDTOs(jobs[start:end]),
		Pagination: response.NewPagination(page, pageSize, total),
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return h.fail(c, err)
	}
	job, err := h.uc.Get(middleware.Viewer(c), id)
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get job listing",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, apperror.Validation("invalid request body", nil))
	}
	job, err := h.uc.Create(middleware.Viewer(c), toJobInput(req))
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job listing created successfully",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, apperror.Validation("invalid request body", nil))
	}
	job, err := h.uc.Update(middleware.Viewer(c), id, toJobInput(req))
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Job listing updated successfully",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.uc.Delete(middleware.Viewer(c), id); err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Job listing deleted successfully",
	})
}

func (h *JobHandler) TogglePublish(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return h.fail(c, err)
	}
	job, err := h.uc.TogglePublish(middleware.Viewer(c), id)
	if err != nil {
		return h.fail(c, err)
	}
	message := "Job listing is now hidden"
	if job.Published {
		message = "Job listing is now published"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: message,
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Verify(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, apperror.Validation("invalid request body", nil))
	}
	job, err := h.uc.Verify(middleware.Viewer(c), id, model.VerificationStatus(req.Status))
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Verification status updated",
		Data:    dto.NewJobDTO(job),
	})
}

// Dashboard lists the viewer's own postings in every state.
func (h *JobHandler) Dashboard(c *fiber.Ctx) error {
	jobs, err := h.uc.ListOwned(middleware.Viewer(c))
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get your job listings",
		Data:    dto.NewJobDTOs(jobs),
	})
}

// AdminList is the moderation queue: every posting in the system.
func (h *JobHandler) AdminList(c *fiber.Ctx) error {
	jobs, err := h.uc.ListAll(middleware.Viewer(c))
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get all job listings",
		Data:    dto.NewJobDTOs(jobs),
	})
}

func (h *JobHandler) fail(c *fiber.Ctx, err error) error {
	return util.FromError(c, err, !middleware.Viewer(c).Authenticated)
}

func parseJobID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid job id", nil)
	}
	return id, nil
}

func toJobInput(req dto.JobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:           req.Title,
		Company:         req.Company,
		CompanyLogo:     req.CompanyLogo,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		Description:     req.Description,
		Type:            model.JobType(req.Type),
		Category:        model.JobCategory(req.Category),
		Experience:      model.ExperienceLevel(req.Experience),
		Skills:          req.Skills,
		ApplicationLink: req.ApplicationLink,
		ContactEmail:    req.ContactEmail,
		Published:       req.Published,
	}
}

// specFromQuery builds the filter spec from the listing query string.
// Facet params are comma-separated; the single category param is the
// deep-link seed and only applies when no categories param is present.
func specFromQuery(c *fiber.Ctx) filter.Spec {
	spec := filter.Spec{Search: c.Query("search")}

	for _, v := range splitParam(c.Query("types")) {
		if t := model.JobType(v); t.Valid() {
			spec.JobTypes = append(spec.JobTypes, t)
		}
	}
	for _, v := range splitParam(c.Query("categories")) {
		if cat := model.JobCategory(v); cat.Valid() {
			spec.Categories = append(spec.Categories, cat)
		}
	}
	for _, v := range splitParam(c.Query("levels")) {
		if e := model.ExperienceLevel(v); e.Valid() {
			spec.ExperienceLevels = append(spec.ExperienceLevels, e)
		}
	}

	if len(spec.Categories) == 0 {
		if seed := filter.SeedCategory(c.Query("category")); len(seed.Categories) > 0 {
			spec.Categories = seed.Categories
		}
	}
	return spec
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func pageParams(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.Query("page_size", "20"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
