package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habits-backend/internal/domain"
)

// uniqueSuffix returns a short random string for collision-free test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with default quotas (5 habits, 5 categories) and
// a unique email and username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()
	return SeedUserWithQuota(t, pool, 5, 5)
}

// SeedUserWithQuota inserts a user with the given limits.
func SeedUserWithQuota(t *testing.T, pool *pgxpool.Pool, maxHabits, maxCategories int) *domain.User {
	t.Helper()

	s := uniqueSuffix()
	u := &domain.User{
		Email:       "user-" + s + "@example.com",
		Username:    "u" + s,
		MaxHabit:    maxHabits,
		CategoryMax: maxCategories,
	}

	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (email, username, password_hash, max_habit, category_max)
		VALUES ($1, $2, 'x', $3, $4)
		RETURNING id, created_at, updated_at`,
		u.Email, u.Username, u.MaxHabit, u.CategoryMax,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	hash := "x"
	u.PasswordHash = &hash
	return u
}

// SeedCategory inserts a category for the user without touching the user's
// category counter.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) *domain.Category {
	t.Helper()

	c := &domain.Category{UserID: userID, Name: "category-" + uniqueSuffix(), Icon: domain.DefaultIcon}
	err := pool.QueryRow(context.Background(), `
		INSERT INTO categories (user_id, name, icon)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		c.UserID, c.Name, c.Icon,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed category: %v", err)
	}
	return c
}

// SeedHabit inserts an active habit at the given position without touching
// the user's habit counter.
func SeedHabit(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, position int) *domain.Habit {
	t.Helper()

	h := &domain.Habit{
		UserID:   userID,
		Title:    "habit-" + uniqueSuffix(),
		Icon:     domain.DefaultIcon,
		Color:    domain.DefaultColor,
		Position: position,
		IsActive: true,
	}
	err := pool.QueryRow(context.Background(), `
		INSERT INTO habits (user_id, title, icon, color, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		h.UserID, h.Title, h.Icon, h.Color, h.Position,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed habit: %v", err)
	}
	return h
}

// SeedArchivedHabit inserts a habit and archives it.
func SeedArchivedHabit(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, position int) *domain.Habit {
	t.Helper()

	h := SeedHabit(t, pool, userID, position)
	if _, err := pool.Exec(context.Background(), `UPDATE habits SET is_active = false WHERE id = $1`, h.ID); err != nil {
		t.Fatalf("testhelper: archive habit: %v", err)
	}
	h.IsActive = false
	return h
}

// SeedLog inserts a completion log for the habit on day.
func SeedLog(t *testing.T, pool *pgxpool.Pool, habitID uuid.UUID, day time.Time) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`INSERT INTO habit_logs (habit_id, log_date) VALUES ($1, $2)`, habitID, day); err != nil {
		t.Fatalf("testhelper: seed log: %v", err)
	}
}
