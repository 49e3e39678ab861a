// controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	"github.com/dev-mohitbeniwal/mobility/service"
	"github.com/dev-mohitbeniwal/mobility/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

type smsConsentRequest struct {
	SMSConsent *bool `json:"smsConsent" binding:"required"`
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/register", uc.Register)

	users := r.Group("/users")
	{
		users.GET("/me", uc.GetMe)
		users.PATCH("/me/sms-consent", uc.UpdateSMSConsent)
		users.GET("/role", uc.GetRole)
		users.GET("/:id", uc.GetUser)
	}
}

// Register endpoint
func (uc *UserController) Register(c *gin.Context) {
	var req service.RegisterRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid user data", mobility_errors.ErrInvalidUserData)
			return
		}
	}

	user, err := uc.userService.Register(c, util.GetPrincipal(c), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) GetMe(c *gin.Context) {
	user, err := uc.userService.GetMe(c, util.GetPrincipal(c))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateSMSConsent(c *gin.Context) {
	var req smsConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "smsConsent is required", mobility_errors.ErrInvalidUserData)
		return
	}

	user, err := uc.userService.UpdateSMSConsent(c, util.GetPrincipal(c), *req.SMSConsent)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update SMS consent")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetRole(c *gin.Context) {
	role, err := uc.userService.GetRole(c, util.GetPrincipal(c))
	if err != nil {
		respondWithServiceError(c, err, "Failed to resolve role")
		return
	}
	c.JSON(http.StatusOK, role)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.userService.GetUser(c, util.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}
