package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pinkoot/AI-Assistant/internal/database"
	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
	requestLogDomain "github.com/pinkoot/AI-Assistant/internal/requestlog/domain"
)

// MySQLRequestLogRepository implements RequestLog persistence for MySQL, storing UUIDs
// as BINARY(16).
type MySQLRequestLogRepository struct {
	db *sql.DB
}

// Create inserts a new RequestLog.
func (m *MySQLRequestLogRepository) Create(ctx context.Context, log *requestLogDomain.RequestLog) error {
	querier := database.GetTx(ctx, m.db)

	id, err := log.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal request log id")
	}

	query := `INSERT INTO request_logs (id, request_id, method, path, request_data, response_data, status_code,
			  user_agent, client_ip, duration_ms, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		log.RequestID,
		log.Method,
		log.Path,
		log.RequestData,
		log.ResponseData,
		log.StatusCode,
		log.UserAgent,
		log.ClientIP,
		log.DurationMs,
		log.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create request log")
	}

	return nil
}

// List retrieves request logs newest first with offset/limit pagination.
func (m *MySQLRequestLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*requestLogDomain.RequestLog, error) {
	querier := database.GetTx(ctx, m.db)

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
		var id []byte

		err := rows.Scan(
			&id,
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

		if err := log.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal request log id")
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
func (m *MySQLRequestLogRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := database.GetTx(ctx, m.db).
		ExecContext(ctx, `DELETE FROM request_logs WHERE created_at < ?`, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete request logs")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}
	return count, nil
}

// NewMySQLRequestLogRepository creates a new MySQL RequestLog repository.
func NewMySQLRequestLogRepository(db *sql.DB) *MySQLRequestLogRepository {
	return &MySQLRequestLogRepository{db: db}
}
