package handler

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"interview-forecaster/internal/dto"
	"interview-forecaster/internal/forecast"
	"interview-forecaster/internal/middleware"
	"interview-forecaster/internal/repository"
	"interview-forecaster/internal/service"
	"interview-forecaster/internal/usecase"
	"interview-forecaster/internal/util"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 5 * 1024 * 1024

// requestError carries the HTTP status a failed step should map to.
type requestError struct {
	code    int
	message string
	err     error
}

func (e *requestError) Error() string { return e.message }
func (e *requestError) Unwrap() error { return e.err }

type ForecastHandler struct {
	uc           *usecase.ForecastUsecase
	models       []string
	defaultModel string
}

// NewForecastHandler takes the model ids of the active provider, so the
// enumerated choices and the default always match the backend the
// usecase will actually call.
func NewForecastHandler(uc *usecase.ForecastUsecase, models []string, defaultModel string) *ForecastHandler {
	return &ForecastHandler{uc: uc, models: models, defaultModel: defaultModel}
}

func (h *ForecastHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/forecast", middleware.RateLimiter(1, 4*time.Second), h.Forecast)
	app.Get("/forecast/:id", h.Result)
	app.Get("/forecast/:id/crib-sheet", h.CribSheet)
	app.Delete("/forecast/:id", h.Discard)
	app.Get("/models", h.Models)
}

// Forecast runs one full analysis for an uploaded resume and job
// description. Each input arrives as a file (.pdf/.txt/.md) or a pasted
// text field; mode picks the question count, model the identifier.
func (h *ForecastHandler) Forecast(c *fiber.Ctx) error {
	resume, err := h.processInput(c, "resume")
	if err != nil {
		return h.respondError(c, err)
	}
	jobDescription, err := h.processInput(c, "job_description")
	if err != nil {
		return h.respondError(c, err)
	}

	modelID := c.FormValue("model", h.defaultModel)
	if !slices.Contains(h.models, modelID) {
		return h.respondError(c, &requestError{
			code:    fiber.StatusBadRequest,
			message: fmt.Sprintf("unknown model %q", modelID),
		})
	}

	req := usecase.ForecastRequest{
		Resume:         resume,
		JobDescription: jobDescription,
		Model:          modelID,
		QuestionCount:  h.uc.QuestionCount(c.FormValue("mode", "normal")),
	}

	analysis, err := h.uc.Forecast(c.Context(), req)
	if err != nil {
		return h.respondError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generating interview forecast",
		Data:    dto.NewForecastDTO(analysis),
	})
}

func (h *ForecastHandler) Result(c *fiber.Ctx) error {
	analysis, err := h.uc.GetAnalysis(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "analysis not found",
		}, nil)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get analysis",
		Data:    dto.NewForecastDTO(analysis),
	})
}

func (h *ForecastHandler) CribSheet(c *fiber.Ctx) error {
	pdfData, err := h.uc.CribSheet(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "analysis not found",
			}, nil)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to generate crib sheet",
		}, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="interview_crib_sheet.pdf"`)
	return c.Send(pdfData)
}

// Discard drops a stored analysis once the user is done with it.
func (h *ForecastHandler) Discard(c *fiber.Ctx) error {
	if err := h.uc.Discard(c.Params("id")); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "analysis not found",
		}, nil)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success discard analysis",
	})
}

func (h *ForecastHandler) Models(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get models",
		Data:    fiber.Map{"models": h.models, "default": h.defaultModel},
	})
}

// processInput resolves one input to plain text. Uploaded bytes go to a
// temp file that is removed on every exit path, including extraction
// failures.
func (h *ForecastHandler) processInput(c *fiber.Ctx, fieldName string) (string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		// No file: fall back to the pasted text field.
		text := strings.TrimSpace(c.FormValue(fieldName + "_text"))
		if text == "" {
			return "", &requestError{
				code:    fiber.StatusBadRequest,
				message: fmt.Sprintf("%s file or %s_text is required", fieldName, fieldName),
			}
		}
		return text, nil
	}

	if file.Size > maxUploadSize {
		return "", &requestError{
			code:    fiber.StatusBadRequest,
			message: fmt.Sprintf("%s file size is too large (max 5MB)", fieldName),
		}
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", &requestError{
			message: fmt.Sprintf("cannot save %s file", fieldName),
			err:     err,
		}
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(file, tmpPath); err != nil {
		return "", &requestError{
			message: fmt.Sprintf("cannot save %s file", fieldName),
			err:     err,
		}
	}

	content, err := util.Extract(tmpPath, ext)
	if err != nil {
		var unsupported *util.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return "", &requestError{
				code:    fiber.StatusUnsupportedMediaType,
				message: fmt.Sprintf("unsupported %s file type %q", fieldName, unsupported.Extension),
				err:     err,
			}
		}
		return "", &requestError{
			code:    fiber.StatusUnprocessableEntity,
			message: fmt.Sprintf("failed to extract %s text", fieldName),
			err:     err,
		}
	}

	log.Printf("Extracted %d chars from %s", len(content), fieldName)
	return content, nil
}

// respondError maps every failure kind of the forecast flow onto the
// JSON error envelope exactly once.
func (h *ForecastHandler) respondError(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    reqErr.code,
			Message: reqErr.message,
		}, reqErr.err)
	}
	var modelErr *service.ModelRequestError
	if errors.As(err, &modelErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "model request failed",
		}, err)
	}
	var malformed *forecast.MalformedReplyError
	if errors.As(err, &malformed) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "model returned an unusable reply",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "failed to generate forecast",
	}, err)
}
