// Package ministrydelivery manages delivery layer of ministries.
package ministrydelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/internal/middleware"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
	"github.com/IanSalomao/churchflow/pkg/tokenpkg"
	"github.com/IanSalomao/churchflow/pkg/web"
)

// Service provides service layer interface needed by ministry delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ministrydelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateMinistryParams) (domain.Ministry, error)
	Get(ctx context.Context, id uuid.UUID, owner string) (domain.Ministry, error)
	List(ctx context.Context, owner string) ([]domain.Ministry, error)
	Update(ctx context.Context, id uuid.UUID, owner string, arg domain.UpdateMinistryParams) (domain.Ministry, error)
	Delete(ctx context.Context, id uuid.UUID, owner string) error
}

// Handler facilitates ministry delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ministry handler.
func NewHandler(ms Service) Handler {
	return Handler{service: ms}
}

type data struct {
	Ministry domain.Ministry `json:"ministry"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type idRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func bindID(gctx *gin.Context) (uuid.UUID, bool) {
	l := zerolog.Ctx(gctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return uuid.Nil, false
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return uuid.Nil, false
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return uuid.Nil, false
	}

	return id, true
}

type createRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LeaderID    string `json:"leader_id" binding:"required,uuid"`
	Status      *bool  `json:"status"`
}

// Create handles http request to create ministry.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	leaderID, err := uuid.Parse(req.LeaderID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	arg := domain.CreateMinistryParams{
		Owner:       authPayload.Username,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		LeaderID:    leaderID,
	}

	ministry, err := h.service.Create(ctx, arg)
	if err != nil {
		if err == domain.ErrLeaderNotFound {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{ministry}})
}

// Get handles http request to get one ministry.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	ministry, err := h.service.Get(ctx, id, authPayload.Username)
	if err != nil {
		if err == domain.ErrMinistryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{ministry}})
}

type dataMinistries struct {
	Ministries []domain.Ministry `json:"ministries"`
}
type responseMinistries struct {
	Data dataMinistries `json:"data,omitempty"`
}

// List handles http request to list ministries.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	ministries, err := h.service.List(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseMinistries{Data: dataMinistries{ministries}})
}

type updateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	LeaderID    *string `json:"leader_id" binding:"omitempty,uuid"`
	Status      *bool   `json:"status"`
}

// Update handles http request to update ministry fields.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg := domain.UpdateMinistryParams{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}

	if req.LeaderID != nil {
		leaderID, err := uuid.Parse(*req.LeaderID)
		if err != nil {
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		arg.LeaderID = &leaderID
	}

	ministry, err := h.service.Update(ctx, id, authPayload.Username, arg)
	if err != nil {
		switch err {
		case domain.ErrMinistryNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrLeaderNotFound:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{ministry}})
}

// Delete handles http request to delete ministry.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	if err := h.service.Delete(ctx, id, authPayload.Username); err != nil {
		if err == domain.ErrMinistryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusNoContent, nil)
}
