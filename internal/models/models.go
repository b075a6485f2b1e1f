package models

import (
	"time"
)

// User represents a registered or guest account.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	Password    string    `json:"-"`
	IsGuest     bool      `json:"isGuest"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserStats tracks a user's solve-job activity.
type UserStats struct {
	UserID        string     `json:"userId"`
	JobsSubmitted int        `json:"jobsSubmitted"`
	JobsSolved    int        `json:"jobsSolved"`
	AvgSolveMS    float64    `json:"avgSolveMs"`
	LastJobAt     *time.Time `json:"lastJobAt,omitempty"`
}

// UserWithStats combines a user and their stats for a single response.
type UserWithStats struct {
	User  User      `json:"user"`
	Stats UserStats `json:"stats"`
}

// ShapeKind distinguishes the two supported geometries (§4.1).
type ShapeKind string

const (
	ShapeRect ShapeKind = "rect"
	ShapeHex  ShapeKind = "hex"
)

// Shape is the wire form of a solve request's geometry: N for rect (grid
// side length), R for hex (ring radius).
type Shape struct {
	Kind ShapeKind `json:"kind"`
	N    int       `json:"n,omitempty"`
	R    int       `json:"r,omitempty"`
}

// JobStatus tracks a solve job through the pipeline described in §6's
// websocket event stream (encoding, solving, done, unsat, timeout, error).
type JobStatus string

const (
	JobQueued   JobStatus = "queued"
	JobEncoding JobStatus = "encoding"
	JobSolving  JobStatus = "solving"
	JobDone     JobStatus = "done"
	JobUnsat    JobStatus = "unsat"
	JobTimeout  JobStatus = "timeout"
	JobError    JobStatus = "error"
)

// Placement is the JSON form of a solved word placement, carrying both the
// rect and hex coordinate readings. Horizontal and Orient are omitted when
// false or zero, so a client reads them against the job's shape kind.
type Placement struct {
	Word       string `json:"word"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Horizontal bool   `json:"horizontal,omitempty"`
	Orient     int    `json:"orient,omitempty"`
}

// Job is a submitted solve request tracked from submission through
// completion, persisted in Postgres and progress-cached in Redis per §4.7's
// job/result storage wiring.
type Job struct {
	ID         string      `json:"id"`
	OwnerID    string      `json:"ownerId"`
	Words      []string    `json:"words"`
	Shape      Shape       `json:"shape"`
	MinQuality int         `json:"minQuality"`
	Status     JobStatus   `json:"status"`
	Placements []Placement `json:"placements,omitempty"`
	Error      string      `json:"error,omitempty"`
	Vars       int         `json:"vars,omitempty"`
	Clauses    int         `json:"clauses,omitempty"`
	DurationMS int64       `json:"durationMs,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// Difficulty labels a generated puzzle's solving difficulty for the puz/ipuz
// writers; the solver itself has no notion of difficulty, only MinQuality.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GridCell is one cell of a rendered puzzle grid: a filled letter (nil when
// black/empty), its clue start number if any, and optional circle/rebus
// decoration carried through from ipuz.
type GridCell struct {
	Letter    *string `json:"letter,omitempty"`
	Number    *int    `json:"number,omitempty"`
	IsCircled bool    `json:"isCircled,omitempty"`
	Rebus     *string `json:"rebus,omitempty"`
}

// Clue is one across/down entry in a rendered puzzle.
type Clue struct {
	Number    int    `json:"number"`
	Text      string `json:"text"`
	Answer    string `json:"answer"`
	PositionX int    `json:"positionX"`
	PositionY int    `json:"positionY"`
	Length    int    `json:"length"`
	Direction string `json:"direction"`
}

// Puzzle is the output-format wire type shared by the puz/ipuz/json writers
// (pkg/output) and the CLI's solved-grid-to-file conversion (pkg/puzzle).
// It carries no solver-internal state — only what a puzzle file format
// needs to render a grid and its clues.
type Puzzle struct {
	ID          string     `json:"id,omitempty"`
	Date        *string    `json:"date,omitempty"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	Difficulty  Difficulty `json:"difficulty"`
	GridWidth   int        `json:"gridWidth"`
	GridHeight  int        `json:"gridHeight"`
	Grid        [][]GridCell `json:"grid"`
	CluesAcross []Clue     `json:"cluesAcross"`
	CluesDown   []Clue     `json:"cluesDown"`
	Theme       *string    `json:"theme,omitempty"`
	Status      string     `json:"status,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}
