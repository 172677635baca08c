package controller

import (
	"errors"

	"wisely_backend/internal/model"
	"wisely_backend/internal/service"
	"wisely_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// swagger:model GenerateTestRequest
type GenerateTestRequest struct {
	Difficulty    model.Difficulty `json:"difficulty"`
	Duration      int              `json:"duration"`
	QuestionCount int              `json:"questionCount"`
}

// Generate godoc
// @Summary Generate an English test
// @Description Builds a difficulty-scaled question set through the AI model
// @Tags tests
// @Accept json
// @Produce json
// @Param body body GenerateTestRequest true "Difficulty tier and duration in minutes"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Difficulty and duration are required"
// @Failure 500 {object} util.Response "Failed to generate test"
// @Router /api/tests/generate [post]
func (c *TestController) Generate(ctx *gin.Context) {
	var req GenerateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Difficulty == "" || req.Duration <= 0 {
		util.BadRequest(ctx, "Difficulty and duration are required")
		return
	}
	if !req.Difficulty.Valid() {
		util.BadRequest(ctx, "Difficulty must be beginner, intermediate or advanced")
		return
	}

	questions, err := c.TestService.GenerateTest(ctx.Request.Context(), req.Difficulty, req.Duration, req.QuestionCount)
	if err != nil {
		util.Error(ctx, 500, "Failed to generate test")
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

// Submit godoc
// @Summary Save a completed test attempt
// @Description Persists questions and answers; the score is recomputed server-side
// @Tags tests
// @Accept json
// @Produce json
// @Param body body service.SubmitRequest true "Completed attempt"
// @Success 201 {object} util.Response{data=model.Test}
// @Failure 400 {object} util.Response "Answers must match questions"
// @Router /api/tests [post]
func (c *TestController) Submit(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)
	if userID == "" {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.TestService.SubmitTest(userID, req)
	if err != nil {
		if errors.Is(err, util.ErrAnswerMismatch) {
			util.BadRequest(ctx, "Answers must match questions")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, test)
}

// History godoc
// @Summary List the caller's test attempts
// @Description Reverse-chronological attempt history for the logged-in user
// @Tags tests
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Test}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/tests/history [get]
func (c *TestController) History(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)
	if userID == "" {
		util.Unauthorized(ctx)
		return
	}

	tests, err := c.TestService.History(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, tests)
}
