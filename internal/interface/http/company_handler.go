package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/internal/application"
	"github.com/oksasatya/go-job-board/pkg/response"
)

type CompanyHandler struct {
	Svc    *application.CompanyService
	Logger *logrus.Logger
}

func NewCompanyHandler(svc *application.CompanyService, logger *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger}
}

type createCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	OwnerID     string `json:"ownerId" binding:"required,uuid"`
	Logo        string `json:"logo" binding:"omitempty,url"`
}

func (h *CompanyHandler) Create(c *gin.Context) {
	uid, err := callerID(c)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	co, err := h.Svc.Create(c.Request.Context(), uid, application.CreateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		OwnerID:     req.OwnerID,
		Logo:        req.Logo,
	})
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"company": toCompanyView(co)}, "company created", nil)
}

func (h *CompanyHandler) GetByOwner(c *gin.Context) {
	ownerID := strings.TrimSpace(c.Query("ownerId"))
	if ownerID == "" {
		response.Error[any](c, http.StatusBadRequest, "ownerId is required", map[string]string{"ownerId": "is required"})
		return
	}
	if _, err := uuid.Parse(ownerID); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid ownerId", map[string]string{"ownerId": "must be a valid UUID"})
		return
	}
	co, ok, err := h.Svc.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hasCompany": ok, "company": toCompanyView(co)}, "company lookup", nil)
}

func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	uid, err := callerID(c)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	fh, err := c.FormFile("logo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "logo file is required", map[string]string{"logo": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "could not read logo", nil)
		return
	}
	defer func() { _ = f.Close() }()

	co, err := h.Svc.UploadLogo(c.Request.Context(), uid, id, application.LogoUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"company": toCompanyView(co)}, "logo uploaded", nil)
}
