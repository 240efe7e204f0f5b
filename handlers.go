package main

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"loantrack/apperror"
	"loantrack/store"
)

// app bundles the dependencies every handler needs. Built once at startup;
// tests build their own against an isolated store.
type app struct {
	cfg   *Config
	log   *logrus.Logger
	store *store.Store
}

func (a *app) setupRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{a.cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.POST("/signup", a.signupHandler)
	api.POST("/login", a.loginHandler)
	api.POST("/logout", a.logoutHandler)

	authGroup := api.Group("/auth")
	authGroup.Use(a.authMiddleware())
	authGroup.GET("/profile", a.profileHandler)
	authGroup.POST("/create-loan", a.createLoanHandler)
	authGroup.GET("/get-loans", a.listLoansHandler)
	authGroup.GET("/get-loan/:loanNumber", a.getLoanHandler)
	authGroup.POST("/create-payment/:loanNumber", a.createPaymentHandler)
	authGroup.GET("/get-payments/:loanNumber", a.getPaymentsHandler)
}

// respondError translates apperror kinds to status codes. Internal errors
// are logged here; everything else is the client's problem.
func (a *app) respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Type == apperror.InternalError {
			a.log.WithError(err).Error("request failed")
		}
		c.JSON(appErr.StatusCode(), gin.H{"error": appErr.Message})
		return
	}
	a.log.WithError(err).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

func (a *app) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, int(a.cfg.TokenTTL.Seconds()), "/", "", false, true)
}

func (a *app) signupHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Username string `json:"username" binding:"required,min=3,max=30"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		a.respondError(c, apperror.NewInternalError("failed to hash password", err))
		return
	}
	user, err := a.store.CreateUser(req.Email, req.Username, hash)
	if err != nil {
		a.respondError(c, err)
		return
	}
	token, err := issueSessionToken(user.ID, a.cfg)
	if err != nil {
		a.respondError(c, apperror.NewInternalError("failed to generate token", err))
		return
	}
	a.setSessionCookie(c, token)
	a.log.WithField("user_id", user.ID).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    gin.H{"id": user.ID, "email": user.Email},
	})
}

func (a *app) loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=30"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := a.store.FindUserByUsername(req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			// Same response as a bad password so usernames cannot be probed.
			a.respondError(c, apperror.NewAuthError("Invalid username or password", nil))
			return
		}
		a.respondError(c, err)
		return
	}
	if !verifyPassword(req.Password, user.PasswordHash) {
		a.respondError(c, apperror.NewAuthError("Invalid username or password", nil))
		return
	}
	token, err := issueSessionToken(user.ID, a.cfg)
	if err != nil {
		a.respondError(c, apperror.NewInternalError("failed to generate token", err))
		return
	}
	a.setSessionCookie(c, token)
	a.log.WithField("user_id", user.ID).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

func (a *app) logoutHandler(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (a *app) profileHandler(c *gin.Context) {
	user, err := a.store.FindUserByID(callerID(c))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile fetched successfully",
		"user":    gin.H{"id": user.ID, "email": user.Email, "username": user.Username},
	})
}
