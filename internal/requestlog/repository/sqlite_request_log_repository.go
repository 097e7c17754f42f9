package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pinkoot/AI-Assistant/internal/database"
	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
)

// SQLiteRequestLogRepository implements RequestLog persistence for SQLite. UUIDs are stored as TEXT
// and timestamps are written in UTC so text comparison orders them correctly.
type SQLiteRequestLogRepository struct {
	db *sql.DB
}

// Create inserts a new RequestLog. Uses transaction support via database.GetTx().
func (s *SQLiteRequestLogRepository) Create(ctx context.Context, log *requestLogDomain.RequestLog) error {
	querier := database.GetTx(ctx, s.db)

	query := `INSERT INTO request_logs (id, request_id, method, path, request_data, response_data, status_code,
			  user_agent, client_ip, duration_ms, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		log.ID,
		log.RequestID,
		log.Method,
		log.Path,
		log.RequestData,
		log.ResponseData,
		log.StatusCode,
		log.UserAgent,
		log.ClientIP,
		log.DurationMs,
		log.CreatedAt.UTC(),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create request log")
	}

	return nil
}

// List retrieves request logs newest first with offset/limit pagination. Returns an
// empty slice when nothing matches.
func (s *SQLiteRequestLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*requestLogDomain.RequestLog, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT id, request_id, method, path, request_data, response_data, status_code,
			  user_agent, client_ip, duration_ms, created_at
			  FROM request_logs
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list request logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	logs := make([]*requestLogDomain.RequestLog, 0)
	for rows.Next() {
		var log requestLogDomain.RequestLog
		err := rows.Scan(
			&log.ID,
			&log.RequestID,
			&log.Method,
			&log.Path,
			&log.RequestData,
			&log.ResponseData,
			&log.StatusCode,
			&log.UserAgent,
			&log.ClientIP,
			&log.DurationMs,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan request log")
		}
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate request logs")
	}

	return logs, nil
}

// DeleteOlderThan removes request logs created before olderThan and returns how many
// rows went. Inside a database.TxManager transaction it joins that transaction.
func (s *SQLiteRequestLogRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := database.GetTx(ctx, s.db).
		ExecContext(ctx, `DELETE FROM request_logs WHERE created_at < ?`, olderThan.UTC())
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete request logs")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}
	return count, nil
}

// NewSQLiteRequestLogRepository creates a new SQLite RequestLog repository.
func NewSQLiteRequestLogRepository(db *sql.DB) *SQLiteRequestLogRepository {
	return &SQLiteRequestLogRepository{db: db}
}
