package handler

import (
	"errors"
	"io"
	"net/http"

	"taskboard/internal/middleware"
	"taskboard/internal/usecase/task"
	"taskboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	service *task.Service
}

func NewTaskHandler(service *task.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var request task.TaskRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	upload, err := readImageUpload(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.CreateTask(c.Request.Context(), ownerID, &request, upload)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Task created", response)
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	responses, err := h.service.ListTasks(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tasks retrieved successfully", responses)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "task not found")
		return
	}

	response, err := h.service.GetTask(c.Request.Context(), taskID, ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task retrieved successfully", response)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "task not found")
		return
	}

	var request task.TaskRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	upload, err := readImageUpload(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.UpdateTask(c.Request.Context(), taskID, ownerID, &request, upload)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task updated", response)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "task not found")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), taskID, ownerID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task deleted successfully", nil)
}

// readImageUpload extracts the optional "image" multipart file. A missing
// file is not an error; size and MIME checks happen in the service layer.
func readImageUpload(c *gin.Context) (*task.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errors.New("invalid image upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("invalid image upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, task.MaxImageSize+1))
	if err != nil {
		return nil, errors.New("invalid image upload")
	}

	return &task.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
