package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/internal/application"
	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
	"github.com/oksasatya/go-job-board/internal/interface/middleware"
	"github.com/oksasatya/go-job-board/pkg/response"
)

type JobHandler struct {
	Svc    *application.JobService
	Saved  *application.SavedJobService
	Logger *logrus.Logger
}

func NewJobHandler(svc *application.JobService, saved *application.SavedJobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Saved: saved, Logger: logger}
}

type createJobRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	Location       string  `json:"location" binding:"required"`
	Salary         *Salary `json:"salary" binding:"required"`
	EmploymentType string  `json:"employment_type" binding:"required,employment"`
	JobType        string  `json:"job_type" binding:"required,worktype"`
	CompanyID      string  `json:"company_id" binding:"required,uuid"`
}

func (h *JobHandler) List(c *gin.Context) {
	var params jobfilter.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	jobs, err := h.Svc.List(c.Request.Context(), params)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	views := toJobViews(jobs)
	if uid, ok := middleware.UserID(c); ok && h.Saved != nil {
		// the listing is public; a bookmark lookup failure only drops the flags
		if ids, err := h.Saved.SavedIDs(c.Request.Context(), uid); err != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Warn("saved flags unavailable")
		} else {
			markSaved(views, ids)
		}
	}
	response.Success(c, http.StatusOK, gin.H{"jobs": views}, "jobs fetched", gin.H{"count": len(jobs)})
}

func (h *JobHandler) Suggestions(c *gin.Context) {
	out, err := h.Svc.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"suggestions": out}, "suggestions fetched", nil)
}

func (h *JobHandler) Search(c *gin.Context) {
	var params jobfilter.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	size := 0
	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			response.Error[any](c, http.StatusBadRequest, "invalid size", map[string]string{"size": "must be a positive whole number"})
			return
		}
		size = v
	}
	jobs, err := h.Svc.Search(c.Request.Context(), params, size)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"jobs": toJobViews(jobs)}, "jobs fetched", gin.H{"count": len(jobs)})
}

func (h *JobHandler) Create(c *gin.Context) {
	uid, err := callerID(c)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	j, err := h.Svc.Create(c.Request.Context(), uid, application.CreateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Salary:         int(*req.Salary),
		EmploymentType: req.EmploymentType,
		JobType:        req.JobType,
		CompanyID:      req.CompanyID,
	})
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"job": toJobView(j)}, "job created", nil)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	j, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": toJobView(j)}, "job fetched", nil)
}
