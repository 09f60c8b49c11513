package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/pkg/entity"
)

type PracticeRepository struct {
	conn PgConnection
}

func NewPracticeRepo(cfg DBConfig) *PracticeRepository {
	return NewPracticeRepoWithConn(NewPool(cfg))
}

func NewPracticeRepoWithConn(conn PgConnection) *PracticeRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for practiceRepo: " + err.Error())
	}
	return &PracticeRepository{
		conn: conn,
	}
}

// The next index is computed by the insert itself; two concurrent writers
// collide on the slot constraint instead of both getting the same index.
const recordRepetition = `INSERT INTO practice_sessions (user_id, affirmation_id, session_type, session_index, practice_day, completed_at) SELECT $1, $2, $3, COUNT(*) + 1, $4, $5 FROM practice_sessions WHERE user_id = $1 AND affirmation_id = $2 AND session_type = $3 AND practice_day = $4 HAVING COUNT(*) < $6 RETURNING id, session_index;`

func (pr *PracticeRepository) Record(ctx context.Context, s *entity.PracticeSession, target int) error {
	if s == nil {
		return errors.New("practice session is nil")
	}
	row := pr.conn.QueryRow(ctx, recordRepetition,
		s.UserID,
		s.AffirmationID,
		string(s.Period),
		s.PracticeDay,
		s.CompletedAt,
		target,
	)
	if err := row.Scan(&s.ID, &s.Index); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrPeriodCompleted
		}
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return errorvalues.ErrRepetitionExists
		case codeForeignKeyViolation:
			return errorvalues.ErrAffirmationNotFound
		}
		return errors.New("recording repetition error: " + err.Error())
	}
	return nil
}

func (pr *PracticeRepository) ProgressByDay(ctx context.Context, uid, affirmationID uuid.UUID, day time.Time) (map[entity.PracticePeriod]int, error) {
	rows, err := pr.conn.Query(ctx, `SELECT session_type, COUNT(*) FROM practice_sessions WHERE user_id = $1 AND affirmation_id = $2 AND practice_day = $3 GROUP BY session_type;`,
		uid, affirmationID, day)
	if err != nil {
		return nil, errors.New("getting practice progress error: " + err.Error())
	}
	defer rows.Close()
	progress := make(map[entity.PracticePeriod]int, len(entity.Periods))
	for rows.Next() {
		var (
			period string
			count  int
		)
		if err := rows.Scan(&period, &count); err != nil {
			return nil, errors.New("unmarshalling practice progress error: " + err.Error())
		}
		progress[entity.PracticePeriod(period)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return progress, nil
}

func (pr *PracticeRepository) PracticeDays(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := pr.conn.Query(ctx, `SELECT DISTINCT practice_day FROM practice_sessions WHERE user_id = $1 ORDER BY practice_day;`, uid)
	if err != nil {
		return nil, errors.New("listing practice days error: " + err.Error())
	}
	defer rows.Close()
	days := make([]time.Time, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, errors.New("unmarshalling practice day error: " + err.Error())
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return days, nil
}

func (pr *PracticeRepository) Summary(ctx context.Context, uid uuid.UUID) (int, *time.Time, error) {
	var (
		total int
		last  *time.Time
	)
	row := pr.conn.QueryRow(ctx, `SELECT COUNT(*), MAX(completed_at) FROM practice_sessions WHERE user_id = $1;`, uid)
	if err := row.Scan(&total, &last); err != nil {
		return 0, nil, errors.New("summarizing practice error: " + err.Error())
	}
	return total, last, nil
}

func (pr *PracticeRepository) Feed(ctx context.Context, limit int) ([]entity.FeedItem, error) {
	rows, err := pr.conn.Query(ctx, `SELECT u.name, a.category, p.session_type, p.session_index, a.current_day, a.duration_days, p.completed_at FROM practice_sessions p JOIN users u ON u.id = p.user_id JOIN affirmations a ON a.id = p.affirmation_id ORDER BY p.completed_at DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("getting feed error: " + err.Error())
	}
	defer rows.Close()
	items := make([]entity.FeedItem, 0, limit)
	for rows.Next() {
		var (
			item             entity.FeedItem
			category, period string
		)
		err := rows.Scan(&item.UserName, &category, &period, &item.Index, &item.CurrentDay, &item.DurationDays, &item.CompletedAt)
		if err != nil {
			return nil, errors.New("unmarshalling feed item error: " + err.Error())
		}
		item.Category = entity.Category(category)
		item.Period = entity.PracticePeriod(period)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return items, nil
}
