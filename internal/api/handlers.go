package api

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/cwsat/crossword/internal/auth"
	"github.com/cwsat/crossword/internal/db"
	"github.com/cwsat/crossword/internal/middleware"
	"github.com/cwsat/crossword/internal/models"
	"github.com/cwsat/crossword/pkg/cwsat"
	"github.com/cwsat/crossword/pkg/geom"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handlers struct {
	db          *db.Database
	authService *auth.AuthService
}

func NewHandlers(database *db.Database, authService *auth.AuthService) *Handlers {
	return &Handlers{db: database, authService: authService}
}

// Auth Handlers

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName" binding:"required,min=2,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GuestRequest struct {
	DisplayName string `json:"displayName" binding:"omitempty,max=50"`
}

type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existingUser, err := h.db.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if existingUser != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	hashedPassword, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := &models.User{
		ID:          uuid.New().String(),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    hashedPassword,
		IsGuest:     false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.db.CreateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Email, user.DisplayName, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{User: *user, Token: token})
}

func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.db.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if !h.authService.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Email, user.DisplayName, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: *user, Token: token})
}

func (h *Handlers) Guest(c *gin.Context) {
	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guestID := uuid.New().String()

	displayName := req.DisplayName
	if displayName == "" {
		displayName = "Guest_" + guestID[:8]
	}

	user := &models.User{
		ID:          guestID,
		Email:       "guest_" + guestID[:8] + "@cwsat.local",
		DisplayName: displayName,
		IsGuest:     true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.db.CreateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create guest user"})
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Email, user.DisplayName, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{User: *user, Token: token})
}

// User Handlers

func (h *Handlers) GetMe(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.db.GetUserByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handlers) GetMyStats(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	stats, err := h.db.GetUserStats(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if stats == nil {
		stats = &models.UserStats{UserID: claims.UserID}
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) GetMyJobs(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	jobs, err := h.db.ListJobsByOwner(claims.UserID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// Solve job handlers — the HTTP surface described in §6's AMBIENT/DOMAIN
// expansion: submit a word list and shape, poll or stream the outcome.

type SubmitSolveRequest struct {
	Words      []string     `json:"words" binding:"required,min=1"`
	Shape      models.Shape `json:"shape" binding:"required"`
	MinQuality int          `json:"minQuality"`
}

type SubmitSolveResponse struct {
	JobID string `json:"jobId"`
}

func (h *Handlers) SubmitSolve(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req SubmitSolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Shape.Kind != models.ShapeRect && req.Shape.Kind != models.ShapeHex {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shape.kind must be \"rect\" or \"hex\""})
		return
	}

	now := time.Now()
	job := &models.Job{
		ID:         uuid.New().String(),
		OwnerID:    claims.UserID,
		Words:      cwsat.NormalizeWords(req.Words),
		Shape:      req.Shape,
		MinQuality: req.MinQuality,
		Status:     models.JobQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.db.CreateJob(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create job"})
		return
	}

	ctx := context.Background()
	if err := h.db.EnqueueJob(ctx, job.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue job"})
		return
	}
	h.db.PublishJobProgress(ctx, job.ID, models.JobQueued)

	c.JSON(http.StatusAccepted, SubmitSolveResponse{JobID: job.ID})
}

func (h *Handlers) GetSolveJob(c *gin.Context) {
	jobID := c.Param("id")

	job, err := h.db.GetJob(jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// RunSolveWorkers starts n worker goroutines draining the Redis job queue,
// each solving one job at a time in its own cwsat.Session per §5's
// concurrency model (no shared mutable state between sessions). It returns
// as soon as the workers are started; they exit once ctx is cancelled.
func (h *Handlers) RunSolveWorkers(ctx context.Context, n int) {
	for i := 0; i < n; i++ {
		go h.solveWorkerLoop(ctx)
	}
}

func (h *Handlers) solveWorkerLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		jobID, err := h.db.DequeueJob(ctx, 5*time.Second)
		if err != nil || jobID == "" {
			continue
		}

		h.processSolveJob(ctx, jobID)
	}
}

func (h *Handlers) processSolveJob(ctx context.Context, jobID string) {
	job, err := h.db.GetJob(jobID)
	if err != nil || job == nil {
		log.Printf("solve worker: job %s not found: %v", jobID, err)
		return
	}

	h.db.UpdateJobStatus(jobID, models.JobEncoding)
	h.db.PublishJobProgress(ctx, jobID, models.JobEncoding)

	var geometry geom.Geometry
	if job.Shape.Kind == models.ShapeHex {
		geometry = geom.NewHex(job.Shape.R)
	} else {
		geometry = geom.NewRect(job.Shape.N)
	}

	problem := cwsat.Problem{Words: job.Words, Geometry: geometry, MinQuality: job.MinQuality}

	h.db.UpdateJobStatus(jobID, models.JobSolving)
	h.db.PublishJobProgress(ctx, jobID, models.JobSolving)

	start := time.Now()
	result, err := cwsat.Solve(problem, cwsat.SolveOptions{Timeout: 30 * time.Second})
	elapsed := time.Since(start)

	if err != nil {
		job.Status = models.JobError
		job.Error = err.Error()
		job.DurationMS = elapsed.Milliseconds()
		h.db.CompleteJob(job)
		h.db.PublishJobProgress(ctx, jobID, models.JobError)
		return
	}

	job.DurationMS = elapsed.Milliseconds()
	job.Vars = result.Stats.Vars
	job.Clauses = result.Stats.Clauses

	switch result.Outcome {
	case cwsat.Sat:
		job.Status = models.JobDone
		job.Placements = make([]models.Placement, len(result.Placements))
		for i, p := range result.Placements {
			job.Placements[i] = placementToModel(job.Shape.Kind, p.Word, p.Cell.X, p.Cell.Y, p.Dir)
		}
	case cwsat.Timeout:
		job.Status = models.JobTimeout
	default:
		job.Status = models.JobUnsat
	}

	if err := h.db.CompleteJob(job); err != nil {
		log.Printf("solve worker: failed to record job %s: %v", jobID, err)
	}
	h.db.PublishJobProgress(ctx, jobID, job.Status)
}

// placementToModel flattens a geometry-aware vars.Placement into the wire
// shape used by both shapes: rect placements carry (x, y, horizontal), hex
// placements carry (q, r, orient) reusing the X/Y fields for axial coords.
func placementToModel(kind models.ShapeKind, word string, x, y int, dir geom.Direction) models.Placement {
	if kind == models.ShapeHex {
		return models.Placement{Word: word, X: x, Y: y, Orient: int(dir)}
	}
	return models.Placement{Word: word, X: x, Y: y, Horizontal: dir == geom.DirA}
}
