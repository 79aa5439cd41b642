package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"homework-groups-go/db"
	"homework-groups-go/grouping"
	"homework-groups-go/metrics"
	"homework-groups-go/models"
	"homework-groups-go/roster"
	"homework-groups-go/workbook"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PlanStore persists finished plans
type PlanStore interface {
	SavePlan(ctx context.Context, plan models.Plan) (models.Plan, error)
	GetPlan(ctx context.Context, planID string) (models.Plan, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	DeletePlan(ctx context.Context, planID string) error
}

// APIHandler holds the dependencies for API handlers
type APIHandler struct {
	Store    PlanStore
	Metrics  *metrics.Collector
	Options  grouping.Options
	Workbook workbook.Options
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(store PlanStore, collector *metrics.Collector, opts grouping.Options, wb workbook.Options) *APIHandler {
	return &APIHandler{
		Store:    store,
		Metrics:  collector,
		Options:  opts,
		Workbook: wb,
	}
}

// RegisterRoutes mounts the API under group
func (h *APIHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/plans", h.ListPlans)
	api.POST("/plans", h.CreatePlan)
	api.GET("/plans/:planId", h.GetPlan)
	api.DELETE("/plans/:planId", h.DeletePlan)
	api.GET("/plans/:planId/workbook", h.DownloadWorkbook)

	api.GET("/ping", PingHandler)
}

// --- Plan Handlers ---

// CreatePlan handles POST /api/plans
//
// Form fields: campusRoster and onlineRoster (xlsx roster exports), taRoster
// (text, new TAs then a blank line then returning TAs), optional numGroups
// and name.
func (h *APIHandler) CreatePlan(c *gin.Context) {
	opts := h.Options
	if v := c.PostForm("numGroups"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "numGroups must be a positive integer"})
			return
		}
		opts.NumGroups = n
	}

	campus, err := readStudentUpload(c, "campusRoster")
	if err != nil {
		respondUploadError(c, "campusRoster", err)
		return
	}
	online, err := readStudentUpload(c, "onlineRoster")
	if err != nil {
		respondUploadError(c, "onlineRoster", err)
		return
	}
	tas, err := readTAUpload(c, "taRoster")
	if err != nil {
		respondUploadError(c, "taRoster", err)
		return
	}

	log.Printf("Planning %d campus and %d online students with %d TAs (%d new, %d returning) in %d groups",
		len(campus), len(online), tas.Total(), len(tas.New), len(tas.Returning), opts.NumGroups)

	start := time.Now()
	result, err := grouping.Run(grouping.Input{
		Campus:       campus,
		Online:       online,
		NewTAs:       tas.New,
		ReturningTAs: tas.Returning,
	}, opts)
	h.Metrics.ObserveRun(result, err, time.Since(start))
	if err != nil {
		log.Printf("Error in CreatePlan handler: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": metrics.Outcome(err)})
		return
	}

	plan, err := h.Store.SavePlan(c.Request.Context(), models.Plan{
		Name:      c.PostForm("name"),
		NumGroups: opts.NumGroups,
		Result:    result,
	})
	if err != nil {
		log.Printf("Error saving plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlans handles GET /api/plans
func (h *APIHandler) ListPlans(c *gin.Context) {
	plans, err := h.Store.ListPlans(c.Request.Context())
	if err != nil {
		log.Printf("Error in ListPlans handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve plans"})
		return
	}
	if plans == nil {
		// Return empty list instead of null for JSON consistency
		c.JSON(http.StatusOK, []models.Plan{})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan handles GET /api/plans/:planId
func (h *APIHandler) GetPlan(c *gin.Context) {
	plan, ok := h.lookupPlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /api/plans/:planId
func (h *APIHandler) DeletePlan(c *gin.Context) {
	planID := c.Param("planId")
	err := h.Store.DeletePlan(c.Request.Context(), planID)
	if err != nil {
		if errors.Is(err, db.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		log.Printf("Error in DeletePlan handler for ID %s: %v", planID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadWorkbook handles GET /api/plans/:planId/workbook
func (h *APIHandler) DownloadWorkbook(c *gin.Context) {
	plan, ok := h.lookupPlan(c)
	if !ok {
		return
	}

	f, err := workbook.Build(plan.Result, h.Workbook)
	if err != nil {
		log.Printf("Error building workbook for plan %s: %v", plan.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Error writing workbook for plan %s: %v", plan.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="HomeworkGroups-%s.xlsx"`, plan.ID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *APIHandler) lookupPlan(c *gin.Context) (models.Plan, bool) {
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan ID is required"})
		return models.Plan{}, false
	}

	plan, err := h.Store.GetPlan(c.Request.Context(), planID)
	if err != nil {
		if errors.Is(err, db.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return models.Plan{}, false
		}
		log.Printf("Error in GetPlan handler for ID %s: %v", planID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve plan"})
		return models.Plan{}, false
	}
	return plan, true
}

// --- Upload helpers ---

func openUpload(c *gin.Context, field string) (multipart.File, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("error retrieving uploaded file: %w", err)
	}
	log.Printf("Received file upload: %s as %s", header.Filename, field)
	return file, nil
}

func readStudentUpload(c *gin.Context, field string) ([]string, error) {
	file, err := openUpload(c, field)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return roster.ReadStudentRoster(file)
}

func readTAUpload(c *gin.Context, field string) (roster.TARoster, error) {
	file, err := openUpload(c, field)
	if err != nil {
		return roster.TARoster{}, err
	}
	defer file.Close()

	return roster.ReadTARoster(file)
}

func respondUploadError(c *gin.Context, field string, err error) {
	log.Printf("Error reading %s upload: %v", field, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %v", field, err)})
}

// --- Ping Handler ---
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pong!"})
}
