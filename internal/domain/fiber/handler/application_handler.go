package handler

import (
	"time"

	"github.com/fadilmartias/talentflow/internal/dto"
	"github.com/fadilmartias/talentflow/internal/middleware"
	"github.com/fadilmartias/talentflow/internal/model"
	"github.com/fadilmartias/talentflow/internal/response"
	"github.com/fadilmartias/talentflow/internal/session"
	"github.com/fadilmartias/talentflow/internal/usecase"
	"github.com/fadilmartias/talentflow/internal/util"
	"github.com/fadilmartias/talentflow/internal/validator"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

type ApplicationHandler struct {
	uc       *usecase.ApplicationUsecase
	sessions *fibersession.Store
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase, sessions *fibersession.Store) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, sessions: sessions}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/catalog", h.Catalog)

	employee := middleware.RequireRole(h.sessions, session.RoleEmployee)
	hr := middleware.RequireRole(h.sessions, session.RoleHR)

	apps := api.Group("/applications")
	apps.Post("/", employee, middleware.RateLimiter(5, 10*time.Second), h.Submit)
	apps.Post("/validate", employee, h.Validate)
	apps.Get("/", hr, h.List)
	apps.Get("/stats", hr, h.Stats)
	apps.Delete("/selection", hr, h.Dismiss)
	apps.Get("/:id", hr, h.Detail)
	apps.Post("/:id/review", hr, h.Review)
}

func (h *ApplicationHandler) Catalog(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get catalog",
		Data: dto.CatalogDTO{
			Positions:   model.Positions,
			Departments: model.Departments,
		},
	})
}

func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var draft dto.DraftApplication
	if err := c.BodyParser(&draft); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application body",
		}, err)
	}

	rec, err := h.uc.Submit(c.UserContext(), draft)
	if err != nil {
		return writeUsecaseError(c, err, "failed to submit application")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted",
		Data: dto.SubmissionDTO{
			Application: rec,
			Reference:   rec.Reference(),
		},
	})
}

// Validate runs a full check, or with ?field= re-checks only that field.
func (h *ApplicationHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid validation body",
		}, err)
	}

	var errs validator.Errors
	if field := c.Query("field"); field != "" {
		if !validator.IsField(field) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "unknown field " + field,
			})
		}
		errs = validator.RevalidateField(req.Errors, req.Draft, field)
	} else {
		errs = validator.Validate(req.Draft)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success validate application",
		Data: dto.ValidationDTO{
			Valid:  len(errs) == 0,
			Errors: errs,
		},
	})
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	status := c.Query("status", string(usecase.FilterAll))

	records, stats, err := h.uc.List(search, status)
	if err != nil {
		return writeUsecaseError(c, err, "failed to list applications")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get applications",
		Data:    records,
		Meta: response.ListMeta{
			Search:   search,
			Status:   status,
			Returned: len(records),
			Stats:    stats,
		},
	})
}

func (h *ApplicationHandler) Stats(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get application stats",
		Data:    h.uc.Stats(),
	})
}

// Detail returns one application and opens it in the session's detail view.
func (h *ApplicationHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	rec, err := h.uc.Get(id)
	if err != nil {
		return writeUsecaseError(c, err, "failed to get application")
	}
	if err := h.updateSession(c, func(st *session.State) { st.Select(id) }); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "could not update session",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get application",
		Data:    rec,
	})
}

func (h *ApplicationHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.updateSession(c, func(st *session.State) { st.Dismiss() }); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "could not update session",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Detail view closed",
	})
}

func (h *ApplicationHandler) Review(c *fiber.Ctx) error {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid review body",
		}, err)
	}

	rec, err := h.uc.Review(c.UserContext(), c.Params("id"), req.Decision, req.Reviewer)
	if err != nil {
		return writeUsecaseError(c, err, "failed to review application")
	}
	if err := h.updateSession(c, func(st *session.State) { st.Dismiss() }); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "could not update session",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Application " + string(rec.Status),
		Data:    rec,
	})
}

func (h *ApplicationHandler) updateSession(c *fiber.Ctx, fn func(*session.State)) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	st := session.FromFiber(sess)
	fn(&st)
	return st.SaveTo(sess)
}
