package controller

import (
	"errors"
	"strconv"

	"wisely_backend/internal/repository"
	"wisely_backend/internal/service"
	"wisely_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TeacherController struct {
	TeacherService *service.TeacherService
}

func NewTeacherController(teacherService *service.TeacherService) *TeacherController {
	return &TeacherController{TeacherService: teacherService}
}

// List godoc
// @Summary List teachers
// @Description Filters by minimum experience and maximum hourly rate; default order is rating, best first
// @Tags teachers
// @Produce json
// @Param subject query string false "Accepted for client compatibility; not a predicate"
// @Param minExperience query int false "Minimum years of experience, inclusive"
// @Param maxRate query int false "Maximum hourly rate, inclusive"
// @Success 200 {object} util.Response{data=[]model.Teacher}
// @Router /api/teachers [get]
func (c *TeacherController) List(ctx *gin.Context) {
	filter := repository.TeacherFilter{
		MinExperience: queryInt(ctx, "minExperience"),
		MaxRate:       queryInt(ctx, "maxRate"),
	}

	teachers, err := c.TeacherService.Search(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, teachers)
}

// GetByID godoc
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher id"
// @Success 200 {object} util.Response{data=model.Teacher}
// @Failure 404 {object} util.Response "Teacher not found"
// @Router /api/teachers/{id} [get]
func (c *TeacherController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid teacher id")
		return
	}

	teacher, err := c.TeacherService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrTeacherNotFound) {
			util.NotFound(ctx, "Teacher not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, teacher)
}
