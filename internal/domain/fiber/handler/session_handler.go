package handler

import (
	"github.com/fadilmartias/talentflow/internal/dto"
	"github.com/fadilmartias/talentflow/internal/session"
	"github.com/fadilmartias/talentflow/internal/util"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

// SessionHandler is the role picker. It does not authenticate.
type SessionHandler struct {
	sessions *fibersession.Store
}

func NewSessionHandler(sessions *fibersession.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(app *fiber.App) {
	s := app.Group("/api/session")
	s.Get("/", h.Current)
	s.Post("/", h.Login)
	s.Delete("/", h.Logout)
}

func (h *SessionHandler) Current(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "could not read session",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get session",
		Data:    toSessionDTO(session.FromFiber(sess)),
	})
}

func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid login body",
		}, err)
	}
	role, err := session.ParseRole(req.Role)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return h.save(c, "Signed in as "+string(role), func(st *session.State) { st.Login(role) })
}

func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	return h.save(c, "Signed out", func(st *session.State) { st.Logout() })
}

func (h *SessionHandler) save(c *fiber.Ctx, message string, fn func(*session.State)) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "could not read session",
		}, err)
	}
	st := session.FromFiber(sess)
	fn(&st)
	if err := st.SaveTo(sess); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "could not save session",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: message,
		Data:    toSessionDTO(st),
	})
}

func toSessionDTO(st session.State) dto.SessionDTO {
	return dto.SessionDTO{
		Role:             string(st.Role),
		SelectedRecordID: st.SelectedRecordID,
	}
}
