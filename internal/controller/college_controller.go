package controller

import (
	"errors"
	"strconv"

	"wisely_backend/internal/repository"
	"wisely_backend/internal/service"
	"wisely_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CollegeController struct {
	CollegeService *service.CollegeService
}

func NewCollegeController(collegeService *service.CollegeService) *CollegeController {
	return &CollegeController{CollegeService: collegeService}
}

// List godoc
// @Summary List colleges
// @Description Filters by course, location and fee bounds; an optional free-text query reorders the result by AI relevance
// @Tags colleges
// @Produce json
// @Param course query string false "Course name substring"
// @Param location query string false "Location substring"
// @Param minFees query int false "Minimum annual fees, inclusive"
// @Param maxFees query int false "Maximum annual fees, inclusive"
// @Param query query string false "Free-text relevance query"
// @Success 200 {object} util.Response{data=[]model.College}
// @Router /api/colleges [get]
func (c *CollegeController) List(ctx *gin.Context) {
	filter := repository.CollegeFilter{
		Course:   ctx.Query("course"),
		Location: ctx.Query("location"),
		MinFees:  queryInt(ctx, "minFees"),
		MaxFees:  queryInt(ctx, "maxFees"),
	}

	colleges, err := c.CollegeService.Search(ctx.Request.Context(), filter, ctx.Query("query"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, colleges)
}

// swagger:model CollegeSearchRequest
type CollegeSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// Search godoc
// @Summary AI college search
// @Description Ranks the whole college corpus against a free-text query; falls back to ranking order when the AI is unavailable
// @Tags colleges
// @Accept json
// @Produce json
// @Param body body CollegeSearchRequest true "Free-text query"
// @Success 200 {object} util.Response{data=[]model.College}
// @Failure 400 {object} util.Response "Query is required"
// @Router /api/colleges/search [post]
func (c *CollegeController) Search(ctx *gin.Context) {
	var req CollegeSearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Query is required")
		return
	}

	colleges, err := c.CollegeService.RecommendAll(ctx.Request.Context(), req.Query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, colleges)
}

// GetByID godoc
// @Summary Get a college
// @Tags colleges
// @Produce json
// @Param id path int true "College id"
// @Success 200 {object} util.Response{data=model.College}
// @Failure 404 {object} util.Response "College not found"
// @Router /api/colleges/{id} [get]
func (c *CollegeController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid college id")
		return
	}

	college, err := c.CollegeService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrCollegeNotFound) {
			util.NotFound(ctx, "College not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, college)
}

// queryInt parses an optional numeric query parameter; absent or
// unparsable values come back as 0 (filter not applied).
func queryInt(ctx *gin.Context, name string) int {
	raw := ctx.Query(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
