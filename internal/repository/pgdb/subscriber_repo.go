package pgdb

import (
	"context"
	"errors"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/internal/repository/pgdb/converter"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SubscriberRepo реализует репозиторий подписчиков поверх PostgreSQL.
// Email уникален: повторная подписка перезаписывает тариф и срок действия.
type SubscriberRepo struct {
	pool *pgxpool.Pool
	conv converter.SubscriberConverter
}

func NewSubscriberRepo(pool *pgxpool.Pool, conv converter.SubscriberConverter) *SubscriberRepo {
	return &SubscriberRepo{pool: pool, conv: conv}
}

const subscriberColumns = `
	id, user_id, email, plan, price, start_date, end_date, is_active, created_at, updated_at
`

func (s *SubscriberRepo) UpsertByEmail(ctx context.Context, subscriber *domain.Subscriber) (*domain.Subscriber, error) {
	query := `
		INSERT INTO subscribers (user_id, email, plan, price, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email)
		DO UPDATE SET
			user_id = EXCLUDED.user_id,
			plan = EXCLUDED.plan,
			price = EXCLUDED.price,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING ` + subscriberColumns + `;
	`

	var model converter.SubscriberModel
	err := s.pool.QueryRow(ctx, query,
		subscriber.UserID, subscriber.Email, subscriber.Plan, subscriber.Price,
		subscriber.Start, subscriber.End, subscriber.IsActive,
	).Scan(
		&model.ID, &model.UserID, &model.Email, &model.Plan, &model.Price,
		&model.StartDate, &model.EndDate, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *SubscriberRepo) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	query := `
		SELECT ` + subscriberColumns + `
		FROM subscribers
		WHERE email = $1;
	`

	var model converter.SubscriberModel
	err := s.pool.QueryRow(ctx, query, email).
		Scan(
			&model.ID, &model.UserID, &model.Email, &model.Plan, &model.Price,
			&model.StartDate, &model.EndDate, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSubscriptionNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

// Deactivate снимает флаг активности и обрывает срок действия. Тариф в записи
// сохраняется.
func (s *SubscriberRepo) Deactivate(ctx context.Context, email string, at time.Time) (*domain.Subscriber, error) {
	query := `
		UPDATE subscribers
		SET is_active = false, end_date = $2, updated_at = NOW()
		WHERE email = $1
		RETURNING ` + subscriberColumns + `;
	`

	var model converter.SubscriberModel
	err := s.pool.QueryRow(ctx, query, email, at).
		Scan(
			&model.ID, &model.UserID, &model.Email, &model.Plan, &model.Price,
			&model.StartDate, &model.EndDate, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSubscriptionNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}
