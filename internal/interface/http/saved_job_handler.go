package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/internal/application"
	"github.com/oksasatya/go-job-board/pkg/response"
)

type SavedJobHandler struct {
	Svc    *application.SavedJobService
	Logger *logrus.Logger
}

func NewSavedJobHandler(svc *application.SavedJobService, logger *logrus.Logger) *SavedJobHandler {
	return &SavedJobHandler{Svc: svc, Logger: logger}
}

func (h *SavedJobHandler) List(c *gin.Context) {
	uid, err := callerID(c)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	saved, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	out := make([]savedJobView, 0, len(saved))
	for _, s := range saved {
		out = append(out, savedJobView{SavedAt: s.SavedAt, Job: toJobView(s.Job)})
	}
	response.Success(c, http.StatusOK, gin.H{"saved_jobs": out}, "saved jobs fetched", gin.H{"count": len(out)})
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	h.mutate(c, h.Svc.Save, "job saved")
}

func (h *SavedJobHandler) Remove(c *gin.Context) {
	h.mutate(c, h.Svc.Remove, "job removed")
}

func (h *SavedJobHandler) mutate(c *gin.Context, op func(ctx context.Context, userID, jobID string) error, msg string) {
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
	if err := op(c.Request.Context(), uid, id); err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job_id": id}, msg, nil)
}
