package handler

import (
	"errors"

	"github.com/fadilmartias/talentflow/internal/usecase"
	"github.com/fadilmartias/talentflow/internal/util"
	"github.com/gofiber/fiber/v2"
)

func writeUsecaseError(c *fiber.Ctx, err error, fallback string) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, usecase.ErrNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "application not found",
		}, err)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "application has already been reviewed",
		}, err)
	case errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrReviewerRequired),
		errors.Is(err, usecase.ErrInvalidStatusFilter):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fallback,
		}, err)
	}
}
