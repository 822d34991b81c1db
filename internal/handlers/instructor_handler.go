package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorship-service/internal/services"
	"github.com/mentorhub/mentorship-service/internal/utils"
)

type InstructorHandler struct {
	BaseHandler
	instructorService services.InstructorService
}

func NewInstructorHandler(instructorService services.InstructorService, logger utils.Logger) *InstructorHandler {
	return &InstructorHandler{
		BaseHandler:       NewBaseHandler(logger),
		instructorService: instructorService,
	}
}

func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req services.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating instructor", "instructor_id", req.ID)

	instructor, err := h.instructorService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, instructor)
}

func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	instructor, err := h.instructorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instructor)
}

func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.instructorService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instructors)
}

func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating instructor", "instructor_id", id)

	instructor, err := h.instructorService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, instructor)
}

func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting instructor", "instructor_id", id)

	if err := h.instructorService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Instructor deleted successfully"})
}
