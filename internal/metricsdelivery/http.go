// Package metricsdelivery manages delivery layer of metrics reports.
package metricsdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/internal/middleware"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
	"github.com/IanSalomao/churchflow/pkg/tokenpkg"
	"github.com/IanSalomao/churchflow/pkg/web"
)

// Service provides service layer interface needed by metrics delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package metricsdelivery
type Service interface {
	Financial(ctx context.Context, owner string, from, to *time.Time) (domain.FinancialMetrics, error)
	Members(ctx context.Context, owner string) (domain.MembershipMetrics, error)
	Ministries(ctx context.Context, owner string) (domain.MinistryMetrics, error)
	Dashboard(ctx context.Context, owner string) (domain.DashboardMetrics, error)
}

// Handler facilitates metrics delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns metrics handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

const dateLayout = "2006-01-02"

var errInvalidDateRange = errors.New("start_date must not be after end_date")

type financialRequest struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type financialData struct {
	Financial domain.FinancialMetrics `json:"financial"`
}
type financialResponse struct {
	Data financialData `json:"data,omitempty"`
}

// Financial handles http request for the financial report.
func (h *Handler) Financial(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req financialRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var from, to *time.Time

	if req.StartDate != "" {
		parsed, _ := time.Parse(dateLayout, req.StartDate)
		from = &parsed
	}

	if req.EndDate != "" {
		parsed, _ := time.Parse(dateLayout, req.EndDate)
		to = &parsed
	}

	if from != nil && to != nil && from.After(*to) {
		l.Info().Err(errInvalidDateRange).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(errInvalidDateRange))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	metrics, err := h.service.Financial(ctx, authPayload.Username, from, to)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, financialResponse{Data: financialData{metrics}})
}

type membersData struct {
	Members domain.MembershipMetrics `json:"members"`
}
type membersResponse struct {
	Data membersData `json:"data,omitempty"`
}

// Members handles http request for the membership report.
func (h *Handler) Members(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	metrics, err := h.service.Members(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, membersResponse{Data: membersData{metrics}})
}

type ministriesData struct {
	Ministries domain.MinistryMetrics `json:"ministries"`
}
type ministriesResponse struct {
	Data ministriesData `json:"data,omitempty"`
}

// Ministries handles http request for the ministry report.
func (h *Handler) Ministries(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	metrics, err := h.service.Ministries(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, ministriesResponse{Data: ministriesData{metrics}})
}

type dashboardData struct {
	Dashboard domain.DashboardMetrics `json:"dashboard"`
}
type dashboardResponse struct {
	Data dashboardData `json:"data,omitempty"`
}

// Dashboard handles http request for the dashboard summary.
func (h *Handler) Dashboard(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	metrics, err := h.service.Dashboard(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, dashboardResponse{Data: dashboardData{metrics}})
}
