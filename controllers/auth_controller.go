package controllers

import (
	"strings"

	"dineinn/configs"
	"dineinn/entity"
	"dineinn/pkg/resp"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterOwnerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var exist entity.Owner
	if err := a.DB.Where("email = ?", email).First(&exist).Error; err == nil {
		resp.Conflict(c, "email already registered"); return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil { resp.ServerError(c, err); return }

	owner := entity.Owner{Email: email, Password: string(hashed), Name: req.Name}
	if err := a.DB.Create(&owner).Error; err != nil {
		resp.ServerError(c, err); return
	}

	resp.Created(c, gin.H{"id": owner.ID, "email": owner.Email, "name": owner.Name})
}

// POST /auth/login → sets the short-lived owner cookie
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	var owner entity.Owner
	if err := a.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&owner).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials"); return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials"); return
	}

	token, err := utils.GenerateToken(owner.ID, utils.RoleOwner, a.Cfg.JWTSecret, a.Cfg.OwnerTokenTTL)
	if err != nil { resp.ServerError(c, err); return }

	utils.SetIdentityCookie(c, utils.OwnerCookie, token, int(a.Cfg.OwnerTokenTTL.Seconds()), a.Cfg.CookieSecure)
	resp.OK(c, gin.H{"token": token, "owner": gin.H{"id": owner.ID, "email": owner.Email, "name": owner.Name}})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	var owner entity.Owner
	if err := a.DB.First(&owner, ownerID).Error; err != nil {
		resp.NotFound(c, "owner not found"); return
	}
	resp.OK(c, owner)
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	utils.SetIdentityCookie(c, utils.OwnerCookie, "", -1, a.Cfg.CookieSecure)
	resp.OK(c, gin.H{"msg": "logged out"})
}
