// Package memberdelivery manages delivery layer of members.
package memberdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

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

const dateLayout = "2006-01-02"

// Service provides service layer interface needed by member delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package memberdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateMemberParams) (domain.Member, error)
	Get(ctx context.Context, id uuid.UUID, owner string) (domain.Member, error)
	List(ctx context.Context, owner string) ([]domain.Member, error)
	Update(ctx context.Context, id uuid.UUID, owner string, arg domain.UpdateMemberParams) (domain.Member, error)
	Delete(ctx context.Context, id uuid.UUID, owner string) error
}

// Handler facilitates member delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns member handler.
func NewHandler(ms Service) Handler {
	return Handler{service: ms}
}

type data struct {
	Member domain.Member `json:"member"`
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
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	BaptismDate string `json:"baptism_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *bool  `json:"status"`
}

// Create handles http request to create member.
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

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	birthDate, _ := time.Parse(dateLayout, req.BirthDate)

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	arg := domain.CreateMemberParams{
		Owner:     authPayload.Username,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Status:    status,
	}

	if req.BaptismDate != "" {
		baptismDate, _ := time.Parse(dateLayout, req.BaptismDate)
		arg.BaptismDate = &baptismDate
	}

	member, err := h.service.Create(ctx, arg)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{member}})
}

// Get handles http request to get one member.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	member, err := h.service.Get(ctx, id, authPayload.Username)
	if err != nil {
		if err == domain.ErrMemberNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{member}})
}

type dataMembers struct {
	Members []domain.Member `json:"members"`
}
type responseMembers struct {
	Data dataMembers `json:"data,omitempty"`
}

// List handles http request to list members.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	members, err := h.service.List(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseMembers{Data: dataMembers{members}})
}

type updateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	BirthDate   *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	BaptismDate *string `json:"baptism_date" binding:"omitempty,datetime=2006-01-02"`
	Status      *bool   `json:"status"`
}

// Update handles http request to update member fields.
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

	arg := domain.UpdateMemberParams{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
	}

	if req.BirthDate != nil {
		birthDate, _ := time.Parse(dateLayout, *req.BirthDate)
		arg.BirthDate = &birthDate
	}

	if req.BaptismDate != nil {
		baptismDate, _ := time.Parse(dateLayout, *req.BaptismDate)
		arg.BaptismDate = &baptismDate
	}

	member, err := h.service.Update(ctx, id, authPayload.Username, arg)
	if err != nil {
		if err == domain.ErrMemberNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{member}})
}

// Delete handles http request to delete member.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	if err := h.service.Delete(ctx, id, authPayload.Username); err != nil {
		if err == domain.ErrMemberNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusNoContent, nil)
}
