package selection

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/dbmetrics"
	"github.com/m04kA/CBO-CourseService/pkg/psqlbuilder"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Repository репозиторий staged-активностей сессии бронирования.
// Участники и даты хранятся JSONB-колонками: строка читается и пишется
// целиком, реляционная развязка этих наборов не нужна.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория staged-активностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую staged-активность
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, sel *domain.Selection) (*domain.Selection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	participants, err := encodeParticipants(sel.ParticipantIDs)
	if err != nil {
		return nil, err
	}
	dates, err := encodeDates(sel.Dates)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("staged_selections").
		Columns(
			"session_id",
			"course_id",
			"course_type",
			"degree_id",
			"participant_ids",
			"dates",
		).
		Values(
			sel.SessionID,
			sel.CourseID.Int64(),
			sel.CourseType,
			sel.DegreeID.Int64(),
			participants,
			dates,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sel.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sel.CreatedAt = createdAt.Time
	sel.UpdatedAt = updatedAt.Time

	return sel, nil
}

// GetByID получает staged-активность по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Selection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	selections, err := r.scanSelections(rows)
	if err != nil {
		return nil, err
	}
	if len(selections) == 0 {
		return nil, ErrSelectionNotFound
	}

	return selections[0], nil
}

// ListBySession получает все staged-активности сессии в порядке создания.
// Внутри транзакции строки блокируются (FOR UPDATE): фиксация сессии
// не должна гоняться с параллельным редактированием.
func (r *Repository) ListBySession(ctx context.Context, sessionID string) ([]domain.Selection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectColumns().
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySession - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySession - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	selections, err := r.scanSelections(rows)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Selection, 0, len(selections))
	for _, s := range selections {
		result = append(result, *s)
	}

	return result, nil
}

// Update перезаписывает участников и даты staged-активности
func (r *Repository) Update(ctx context.Context, sel *domain.Selection) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	participants, err := encodeParticipants(sel.ParticipantIDs)
	if err != nil {
		return err
	}
	dates, err := encodeDates(sel.Dates)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("staged_selections").
		Set("degree_id", sel.DegreeID.Int64()).
		Set("participant_ids", participants).
		Set("dates", dates).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sel.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSelectionNotFound
	}

	return nil
}

// Delete удаляет staged-активность
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staged_selections").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSelectionNotFound
	}

	return nil
}

// DeleteBySession удаляет все staged-активности сессии.
// Отсутствие строк не ошибка: пустую сессию можно чистить повторно.
func (r *Repository) DeleteBySession(ctx context.Context, sessionID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staged_selections").
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBySession - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteBySession - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// selectColumns общий select по колонкам staged_selections
func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"session_id",
		"course_id",
		"course_type",
		"degree_id",
		"participant_ids",
		"dates",
		"created_at",
		"updated_at",
	).From("staged_selections")
}

// scanSelections сканирует результаты запроса в слайс staged-активностей
func (r *Repository) scanSelections(rows *sql.Rows) ([]*domain.Selection, error) {
	selections := make([]*domain.Selection, 0)

	for rows.Next() {
		var sel domain.Selection
		var courseID, degreeID int64
		var courseType string
		var participants, dates []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&sel.ID,
			&sel.SessionID,
			&courseID,
			&courseType,
			&degreeID,
			&participants,
			&dates,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSelections - scan row: %v", ErrScanRow, err)
		}

		sel.CourseID = types.NumericID(courseID)
		sel.CourseType = domain.CourseType(courseType)
		sel.DegreeID = types.NumericID(degreeID)

		if sel.ParticipantIDs, err = decodeParticipants(participants); err != nil {
			return nil, err
		}
		if sel.Dates, err = decodeDates(dates); err != nil {
			return nil, err
		}

		sel.CreatedAt = createdAt.Time
		sel.UpdatedAt = updatedAt.Time

		selections = append(selections, &sel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSelections - rows error: %v", ErrScanRow, err)
	}

	return selections, nil
}
