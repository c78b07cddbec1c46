package controllers

import (
	"evcharge/internal/models/request_models"
	"evcharge/internal/services"
	"evcharge/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (u *UserController) Register(c *gin.Context) {

	var request request_models.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := u.userService.Register(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Registered successfully")
}

func (u *UserController) Login(c *gin.Context) {

	var request request_models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	login, err := u.userService.Login(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, login, "Logged in")
}

func (u *UserController) GetProfile(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	user, err := u.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "")
}

func (u *UserController) UpdateProfile(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	var request request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := u.userService.UpdateProfile(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Profile updated")
}

func (u *UserController) RequestEmailChange(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	var request request_models.RequestEmailChangeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := u.userService.RequestEmailChange(c.Request.Context(), userID, request.NewEmail); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification code sent")
}

func (u *UserController) ConfirmEmailChange(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	var request request_models.ConfirmEmailChangeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := u.userService.ConfirmEmailChange(c.Request.Context(), userID, request.Code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Email updated")
}

// currentUserID reads the authenticated user id set by the JWT middleware.
// It writes the error response itself so handlers can just return.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return uuid.Nil, err
	}
	return userID, nil
}
