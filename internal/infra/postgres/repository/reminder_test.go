package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

func TestReminderRepository_GetDueBatch(t *testing.T) {
	remindedBefore := testNow.Add(-20 * time.Hour)

	t.Run("rows", func(t *testing.T) {
		mock := setupTestDB(t)

		mock.ExpectQuery(`(?s)WHERE u.reminders_enabled.*AND u.id > \$3.*ORDER BY u.id\s+LIMIT \$4`).
			WithArgs(testNow, remindedBefore, int64(10), 2).
			WillReturnRows(pgxmock.NewRows([]string{"id", "due_count"}).
				AddRow(int64(11), 3).
				AddRow(int64(14), 1))

		got, err := NewReminderRepository(mock).GetDueBatch(context.Background(), testNow, remindedBefore, 10, 2)

		require.NoError(t, err)
		assert.Equal(t, []entities.DueSummary{{UserID: 11, DueCount: 3}, {UserID: 14, DueCount: 1}}, got)
	})

	t.Run("query error", func(t *testing.T) {
		mock := setupTestDB(t)

		mock.ExpectQuery(`FROM users u`).
			WithArgs(testNow, remindedBefore, int64(0), 100).
			WillReturnError(errors.New("connection reset"))

		got, err := NewReminderRepository(mock).GetDueBatch(context.Background(), testNow, remindedBefore, 0, 100)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "get due reminders")
		assert.Nil(t, got)
	})
}
