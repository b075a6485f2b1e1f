package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cwsat/crossword/internal/models"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// jobQueueKey is the Redis list solve workers BRPOP from; jobProgressChannel
// is the Pub/Sub channel prefix the hub subscribes to per job.
const (
	jobQueueKey          = "jobs:queue"
	jobProgressChannel   = "job:progress:"
)

type Database struct {
	DB    *sql.DB
	Redis *redis.Client
}

func New(postgresURL, redisURL string) (*Database, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Database{DB: db, Redis: rdb}, nil
}

func (d *Database) Close() error {
	if err := d.DB.Close(); err != nil {
		return err
	}
	return d.Redis.Close()
}

// InitSchema creates all database tables.
func (d *Database) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		email VARCHAR(255) UNIQUE,
		display_name VARCHAR(100) NOT NULL,
		avatar_url TEXT,
		password_hash VARCHAR(255),
		is_guest BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS user_stats (
		user_id VARCHAR(36) PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		jobs_submitted INTEGER DEFAULT 0,
		jobs_solved INTEGER DEFAULT 0,
		avg_solve_ms FLOAT DEFAULT 0,
		last_job_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS jobs (
		id VARCHAR(36) PRIMARY KEY,
		owner_id VARCHAR(36) REFERENCES users(id) ON DELETE CASCADE,
		words JSONB NOT NULL,
		shape_kind VARCHAR(10) NOT NULL,
		shape_n INTEGER DEFAULT 0,
		shape_r INTEGER DEFAULT 0,
		min_quality INTEGER NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'queued',
		placements JSONB,
		error TEXT,
		vars INTEGER DEFAULT 0,
		clauses INTEGER DEFAULT 0,
		duration_ms BIGINT DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_owner_id ON jobs(owner_id);
	CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
	CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at);
	`

	_, err := d.DB.Exec(schema)
	return err
}

// User operations

func (d *Database) CreateUser(user *models.User) error {
	_, err := d.DB.Exec(`
		INSERT INTO users (id, email, display_name, avatar_url, password_hash, is_guest, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, user.ID, user.Email, user.DisplayName, user.AvatarURL, user.Password, user.IsGuest, user.CreatedAt, user.UpdatedAt)

	if err != nil {
		return err
	}

	_, err = d.DB.Exec(`INSERT INTO user_stats (user_id) VALUES ($1)`, user.ID)
	return err
}

func (d *Database) GetUserByID(id string) (*models.User, error) {
	user := &models.User{}
	err := d.DB.QueryRow(`
		SELECT id, email, display_name, avatar_url, password_hash, is_guest, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.DisplayName, &user.AvatarURL, &user.Password, &user.IsGuest, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func (d *Database) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := d.DB.QueryRow(`
		SELECT id, email, display_name, avatar_url, password_hash, is_guest, created_at, updated_at
		FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.DisplayName, &user.AvatarURL, &user.Password, &user.IsGuest, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func (d *Database) GetUserStats(userID string) (*models.UserStats, error) {
	stats := &models.UserStats{}
	err := d.DB.QueryRow(`
		SELECT user_id, jobs_submitted, jobs_solved, avg_solve_ms, last_job_at
		FROM user_stats WHERE user_id = $1
	`, userID).Scan(&stats.UserID, &stats.JobsSubmitted, &stats.JobsSolved, &stats.AvgSolveMS, &stats.LastJobAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	return stats, err
}

func (d *Database) UpdateUserStats(stats *models.UserStats) error {
	_, err := d.DB.Exec(`
		UPDATE user_stats SET jobs_submitted = $2, jobs_solved = $3, avg_solve_ms = $4, last_job_at = $5
		WHERE user_id = $1
	`, stats.UserID, stats.JobsSubmitted, stats.JobsSolved, stats.AvgSolveMS, stats.LastJobAt)
	return err
}

// Job operations

func (d *Database) CreateJob(job *models.Job) error {
	wordsJSON, _ := json.Marshal(job.Words)

	_, err := d.DB.Exec(`
		INSERT INTO jobs (id, owner_id, words, shape_kind, shape_n, shape_r, min_quality, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, job.ID, job.OwnerID, wordsJSON, job.Shape.Kind, job.Shape.N, job.Shape.R, job.MinQuality, job.Status, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = d.DB.Exec(`
		UPDATE user_stats SET jobs_submitted = jobs_submitted + 1, last_job_at = $2 WHERE user_id = $1
	`, job.OwnerID, job.CreatedAt)
	return err
}

func (d *Database) GetJob(id string) (*models.Job, error) {
	job := &models.Job{}
	var wordsJSON, placementsJSON []byte
	var errText sql.NullString

	err := d.DB.QueryRow(`
		SELECT id, owner_id, words, shape_kind, shape_n, shape_r, min_quality, status,
		       placements, error, vars, clauses, duration_ms, created_at, updated_at
		FROM jobs WHERE id = $1
	`, id).Scan(&job.ID, &job.OwnerID, &wordsJSON, &job.Shape.Kind, &job.Shape.N, &job.Shape.R, &job.MinQuality, &job.Status,
		&placementsJSON, &errText, &job.Vars, &job.Clauses, &job.DurationMS, &job.CreatedAt, &job.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(wordsJSON, &job.Words)
	if len(placementsJSON) > 0 {
		json.Unmarshal(placementsJSON, &job.Placements)
	}
	job.Error = errText.String

	return job, nil
}

// UpdateJobStatus advances a job's status without touching its result, used
// for the encoding/solving transitions that the websocket stream reports.
func (d *Database) UpdateJobStatus(id string, status models.JobStatus) error {
	_, err := d.DB.Exec(`UPDATE jobs SET status = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id, status)
	return err
}

// CompleteJob records a terminal outcome (done/unsat/timeout/error) along
// with the solver's placements and stats.
func (d *Database) CompleteJob(job *models.Job) error {
	placementsJSON, _ := json.Marshal(job.Placements)

	_, err := d.DB.Exec(`
		UPDATE jobs SET status = $2, placements = $3, error = $4, vars = $5, clauses = $6,
		                duration_ms = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, job.ID, job.Status, placementsJSON, job.Error, job.Vars, job.Clauses, job.DurationMS)
	if err != nil {
		return err
	}

	if job.Status == models.JobDone {
		_, err = d.DB.Exec(`
			UPDATE user_stats SET jobs_solved = jobs_solved + 1,
			       avg_solve_ms = (avg_solve_ms * jobs_solved + $2) / (jobs_solved + 1)
			WHERE user_id = $1
		`, job.OwnerID, job.DurationMS)
	}
	return err
}

func (d *Database) ListJobsByOwner(ownerID string, limit, offset int) ([]*models.Job, error) {
	rows, err := d.DB.Query(`
		SELECT id, owner_id, words, shape_kind, shape_n, shape_r, min_quality, status,
		       placements, error, vars, clauses, duration_ms, created_at, updated_at
		FROM jobs WHERE owner_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job := &models.Job{}
		var wordsJSON, placementsJSON []byte
		var errText sql.NullString

		err := rows.Scan(&job.ID, &job.OwnerID, &wordsJSON, &job.Shape.Kind, &job.Shape.N, &job.Shape.R, &job.MinQuality, &job.Status,
			&placementsJSON, &errText, &job.Vars, &job.Clauses, &job.DurationMS, &job.CreatedAt, &job.UpdatedAt)
		if err != nil {
			return nil, err
		}

		json.Unmarshal(wordsJSON, &job.Words)
		if len(placementsJSON) > 0 {
			json.Unmarshal(placementsJSON, &job.Placements)
		}
		job.Error = errText.String
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// Redis session operations

func (d *Database) SetSession(ctx context.Context, userID, token string, expiration time.Duration) error {
	return d.Redis.Set(ctx, "session:"+token, userID, expiration).Err()
}

func (d *Database) GetSession(ctx context.Context, token string) (string, error) {
	return d.Redis.Get(ctx, "session:"+token).Result()
}

func (d *Database) DeleteSession(ctx context.Context, token string) error {
	return d.Redis.Del(ctx, "session:"+token).Err()
}

// Redis job queue and progress fan-out

// EnqueueJob pushes a job id onto the solve queue for a worker to pick up.
func (d *Database) EnqueueJob(ctx context.Context, jobID string) error {
	return d.Redis.LPush(ctx, jobQueueKey, jobID).Err()
}

// DequeueJob blocks until a job id is available, the timeout elapses, or the
// context is done. An elapsed timeout returns an empty id and a nil error.
func (d *Database) DequeueJob(ctx context.Context, timeout time.Duration) (string, error) {
	res, err := d.Redis.BRPop(ctx, timeout, jobQueueKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if len(res) < 2 {
		return "", nil
	}
	return res[1], nil
}

// PublishJobProgress broadcasts a status change on the per-job Pub/Sub
// channel; internal/realtime.Hub relays it to the job's websocket clients.
func (d *Database) PublishJobProgress(ctx context.Context, jobID string, status models.JobStatus) error {
	return d.Redis.Publish(ctx, jobProgressChannel+jobID, string(status)).Err()
}

// SubscribeJobProgress opens a Pub/Sub subscription for one job's status
// channel. Callers must close the returned subscription.
func (d *Database) SubscribeJobProgress(ctx context.Context, jobID string) *redis.PubSub {
	return d.Redis.Subscribe(ctx, jobProgressChannel+jobID)
}
