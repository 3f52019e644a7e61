package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_quote_app/internal/apperrors"
	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_quote_app/internal/core/ports/services"
	"github.com/SscSPs/fx_quote_app/internal/dto"
	"github.com/SscSPs/fx_quote_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// EventConversionCompleted is sent to analytics after each recorded conversion.
const EventConversionCompleted = "conversion_completed"

// conversionHandler handles HTTP requests for quotes, conversions and transactions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
	events            middleware.EventTracker
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade, events middleware.EventTracker) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
		events:            events,
	}
}

// registerConversionRoutes registers routes related to quotes and conversions.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, events middleware.EventTracker) {
	h := newConversionHandler(conversionService, events)

	rg.GET("/quotes/usd-brl", h.getCurrentRate)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("", h.convert)
		conversions.POST("/brl-to-usd", h.convertInDirection(domain.BRLToUSD))
		conversions.POST("/usd-to-brl", h.convertInDirection(domain.USDToBRL))
	}

	rg.GET("/transactions", h.listTransactions)
}

// getCurrentRate godoc
// @Summary Get the current USD-BRL rate
// @Description Fetches a fresh quote from the provider on every call
// @Tags quotes
// @Produce  json
// @Success 200 {object} dto.RateResponse
// @Failure 503 {object} dto.ErrorResponse "Quote provider unavailable"
// @Router /quotes/usd-brl [get]
func (h *conversionHandler) getCurrentRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate, err := h.conversionService.GetCurrentRate(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get current rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts between BRL and USD at the current rate and records the transaction
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 503 {object} dto.ErrorResponse "Exchange rate unavailable"
// @Failure 500 {object} dto.ErrorResponse "Failed to record conversion"
// @Router /conversions [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	direction, err := domain.ParseDirection(req.Direction)
	if err != nil {
		logger.Warn("Unsupported conversion direction", slog.String("direction", req.Direction))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.doConvert(c, logger, domain.ConversionRequest{Amount: req.Amount, Direction: direction, User: req.User})
}

// convertInDirection godoc
// @Summary Convert an amount in a fixed direction
// @Description Same as POST /conversions with the direction taken from the path
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.DirectionalConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 503 {object} dto.ErrorResponse "Exchange rate unavailable"
// @Failure 500 {object} dto.ErrorResponse "Failed to record conversion"
// @Router /conversions/brl-to-usd [post]
// @Router /conversions/usd-to-brl [post]
func (h *conversionHandler) convertInDirection(direction domain.Direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		var req dto.DirectionalConvertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}

		h.doConvert(c, logger, req.ToDomain(direction))
	}
}

func (h *conversionHandler) doConvert(c *gin.Context, logger *slog.Logger, req domain.ConversionRequest) {
	logger = logger.With(slog.String("direction", string(req.Direction)))
	logger.Info("Received request to convert")

	res, err := h.conversionService.Convert(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to convert amount")
		return
	}

	middleware.PosthogEvent(c, h.events, req.User, EventConversionCompleted, map[string]any{
		"direction":      string(req.Direction),
		"transaction_id": res.Transaction.ID,
	})
	c.JSON(http.StatusOK, dto.ToConversionResponse(req, res))
}

// listTransactions godoc
// @Summary List recorded conversions
// @Description Returns every recorded conversion in insertion order
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Router /transactions [get]
func (h *conversionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.conversionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// respondError writes the status mapped from err. Internal failures get a
// generic message; client and upstream failures carry the error text.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status := apperrors.StatusCode(err)
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: msg})
	case status == http.StatusServiceUnavailable:
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: apperrors.ErrRateUnavailable.Error()})
	default:
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})
	}
}
