package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"homework-groups-go/config"
	"homework-groups-go/models"
)

const (
	plansKey       = "plans" // Set: Stores all plan IDs
	planInfoPrefix = "plan:" // String prefix: plan:{id} -> JSON encoded plan
)

// ErrPlanNotFound is returned when no plan is stored under an ID
var ErrPlanNotFound = errors.New("plan not found")

// RedisService stores finished plans in Redis
type RedisService struct {
	Client *redis.Client
}

// NewRedisService creates a new RedisService instance
func NewRedisService(client *redis.Client) *RedisService {
	return &RedisService{
		Client: client,
	}
}

// Helper to generate plan info key
func getPlanInfoKey(planID string) string {
	return planInfoPrefix + planID
}

// SavePlan stores a plan and returns it with ID and CreatedAt filled in
func (s *RedisService) SavePlan(ctx context.Context, plan models.Plan) (models.Plan, error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return models.Plan{}, fmt.Errorf("failed to encode plan %s: %w", plan.ID, err)
	}

	pipe := s.Client.TxPipeline()
	// Add plan ID to the global set of plans
	pipe.SAdd(ctx, plansKey, plan.ID)
	pipe.Set(ctx, getPlanInfoKey(plan.ID), data, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error saving plan %s: %v", plan.ID, err)
		return models.Plan{}, fmt.Errorf("failed to save plan to Redis: %w", err)
	}
	log.Printf("Saved plan %s (%d groups)", plan.ID, plan.NumGroups)
	return plan, nil
}

// GetPlan retrieves a plan by its ID
func (s *RedisService) GetPlan(ctx context.Context, planID string) (models.Plan, error) {
	data, err := s.Client.Get(ctx, getPlanInfoKey(planID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
		}
		log.Printf("Error getting plan %s: %v", planID, err)
		return models.Plan{}, fmt.Errorf("failed to get plan from Redis: %w", err)
	}

	var plan models.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return models.Plan{}, fmt.Errorf("failed to decode plan %s: %w", planID, err)
	}
	return plan, nil
}

// ListPlans retrieves all stored plans, newest first
func (s *RedisService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	planIDs, err := s.Client.SMembers(ctx, plansKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Plan{}, nil
		}
		log.Printf("Error getting all plan IDs: %v", err)
		return nil, fmt.Errorf("failed to get plan IDs from Redis: %w", err)
	}

	plans := make([]models.Plan, 0, len(planIDs))
	for _, id := range planIDs {
		plan, err := s.GetPlan(ctx, id)
		if err != nil {
			// Log the error but continue trying to fetch others
			log.Printf("Error fetching plan %s: %v", id, err)
			continue
		}
		plans = append(plans, plan)
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	return plans, nil
}

// DeletePlan removes a plan. Deleting a missing plan returns ErrPlanNotFound.
func (s *RedisService) DeletePlan(ctx context.Context, planID string) error {
	pipe := s.Client.TxPipeline()
	removed := pipe.SRem(ctx, plansKey, planID)
	pipe.Del(ctx, getPlanInfoKey(planID))

	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error deleting plan %s: %v", planID, err)
		return fmt.Errorf("failed to delete plan from Redis: %w", err)
	}
	if removed.Val() == 0 {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}
	return nil
}

// Ping checks the Redis connection
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// --- Utility ---

// InitializeRedisClient creates and tests a Redis client connection
func InitializeRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", cfg.Addr, err)
	}

	log.Printf("Successfully connected to Redis %s DB %d", cfg.Addr, cfg.DB)
	return rdb, nil
}
