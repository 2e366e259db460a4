package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/creatorqa/profile-service/internal/models"
)

// AnsweredByProfileID возвращает страницу отвеченных вопросов профиля,
// новые — первыми.
func (s *ProfilesStorage) AnsweredByProfileID(ctx context.Context, profileID uuid.UUID, limit, offset int32) ([]models.Question, error) {
	const op = "storage/postgres/questions/AnsweredByProfileID"

	q := `
	SELECT id, profile_id, question, answer, created_at, updated_at
	FROM questions
	WHERE profile_id = $1 AND answer <> ''
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3`

	rows, err := s.db.Query(ctx, q, profileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(
			&question.ID,
			&question.ProfileID,
			&question.Question,
			&question.Answer,
			&question.CreatedAt,
			&question.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return questions, nil
}

// CountAnsweredByProfileID возвращает общее число отвеченных вопросов профиля.
func (s *ProfilesStorage) CountAnsweredByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	const op = "storage/postgres/questions/CountAnsweredByProfileID"

	var total int64
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM questions WHERE profile_id = $1 AND answer <> ''`,
		profileID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}
