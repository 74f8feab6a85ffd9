package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID             int     `json:"id"`
	Login          string  `json:"login"`
	Email          string  `json:"email"`
	Description    string  `json:"description"`
	IsPremium      bool    `json:"is_premium"`
	SubscriptionID string  `json:"subscription_id,omitempty"`
	RodDiameterMM  float64 `json:"rod_diameter_mm"`
	BodyDiameterMM float64 `json:"body_diameter_mm"`
	BaselineBar    float64 `json:"baseline_bar"`
	VRefMPS        float64 `json:"v_ref_mps"`
}

// UnlockEvent is one append-only access record, one row per unlock.
type UnlockEvent struct {
	ID             uuid.UUID `json:"id"`
	UserID         int       `json:"user_id"`
	Email          string    `json:"email"`
	SubscriptionID string    `json:"subscription_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, description string) error
	UpdateGeometry(ctx context.Context, id int, rodMM, bodyMM, baselineBar, vRefMPS float64) error
	SetPremium(ctx context.Context, id int, subscriptionID string) error
	LogUnlock(ctx context.Context, ev UnlockEvent) error
	CountUsers(ctx context.Context) (int, error)
	RecentUnlocks(ctx context.Context, limit int) ([]UnlockEvent, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var sub sql.NullString
	query := `SELECT id, login, email, COALESCE(description, ''), is_premium, subscription_id,
		COALESCE(rod_diameter_mm, 10), COALESCE(body_diameter_mm, 46),
		COALESCE(baseline_bar, 10), COALESCE(v_ref_mps, 1)
		FROM users WHERE id=$1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Login, &p.Email, &p.Description, &p.IsPremium, &sub,
		&p.RodDiameterMM, &p.BodyDiameterMM, &p.BaselineBar, &p.VRefMPS,
	)
	if err != nil {
		return Profile{}, err
	}
	p.SubscriptionID = sub.String
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, description string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET description=$1 WHERE id=$2", description, id)
	return err
}

func (r *PostgresUserRepository) UpdateGeometry(ctx context.Context, id int, rodMM, bodyMM, baselineBar, vRefMPS float64) error {
	query := `UPDATE users SET rod_diameter_mm=$1, body_diameter_mm=$2, baseline_bar=$3, v_ref_mps=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rodMM, bodyMM, baselineBar, vRefMPS, id)
	return err
}

func (r *PostgresUserRepository) SetPremium(ctx context.Context, id int, subscriptionID string) error {
	query := "UPDATE users SET is_premium=true, subscription_id=$1 WHERE id=$2"
	_, err := r.db.ExecContext(ctx, query, subscriptionID, id)
	return err
}

func (r *PostgresUserRepository) LogUnlock(ctx context.Context, ev UnlockEvent) error {
	query := "INSERT INTO unlock_events (id, user_id, email, subscription_id, created_at) VALUES ($1, $2, $3, $4, $5)"
	_, err := r.db.ExecContext(ctx, query, ev.ID, ev.UserID, ev.Email, ev.SubscriptionID, ev.CreatedAt)
	return err
}

func (r *PostgresUserRepository) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}

func (r *PostgresUserRepository) RecentUnlocks(ctx context.Context, limit int) ([]UnlockEvent, error) {
	query := "SELECT id, user_id, email, subscription_id, created_at FROM unlock_events ORDER BY created_at DESC LIMIT $1"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UnlockEvent
	for rows.Next() {
		var ev UnlockEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Email, &ev.SubscriptionID, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
