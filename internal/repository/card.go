package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mesto/mesto-go/internal/model"
)

var ErrCardNotFound = errors.New("card not found")

// CardRepository handles card and like persistence operations.
type CardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new CardRepository.
func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts a new card.
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	query := `INSERT INTO cards (id, owner_id, name, link) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, card.ID, card.OwnerID, card.Name, card.Link)
	return err
}

// GetByID retrieves a card with its like set.
func (r *CardRepository) GetByID(ctx context.Context, id string) (*model.Card, error) {
	query := `SELECT id, owner_id, name, link, created_at FROM cards WHERE id = ?`

	card := &model.Card{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID, &card.OwnerID, &card.Name, &card.Link, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	likes, err := r.likesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	card.Likes = likes
	return card, nil
}

// List retrieves all cards with their like sets, newest first.
func (r *CardRepository) List(ctx context.Context) ([]model.Card, error) {
	query := `SELECT id, owner_id, name, link, created_at FROM cards ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []model.Card
	index := make(map[string]int)
	for rows.Next() {
		var c model.Card
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Link, &c.CreatedAt); err != nil {
			return nil, err
		}
		index[c.ID] = len(cards)
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	likeRows, err := r.db.QueryContext(ctx, `SELECT card_id, user_id FROM card_likes`)
	if err != nil {
		return nil, err
	}
	defer likeRows.Close()

	for likeRows.Next() {
		var cardID, userID string
		if err := likeRows.Scan(&cardID, &userID); err != nil {
			return nil, err
		}
		if i, ok := index[cardID]; ok {
			cards[i].Likes = append(cards[i].Likes, userID)
		}
	}
	return cards, likeRows.Err()
}

// Delete removes a card and its likes. Returns ErrCardNotFound when no row
// was deleted; the delete itself is the atomic arbiter between concurrent
// attempts.
func (r *CardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// AddLike records that userID likes the card. Re-likes are absorbed by the
// composite primary key, so the like set never holds duplicates.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID string) error {
	query := `INSERT IGNORE INTO card_likes (card_id, user_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, cardID, userID)
	return err
}

// RemoveLike removes userID from the card's like set. Removing an absent
// like is a no-op.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID string) error {
	query := `DELETE FROM card_likes WHERE card_id = ? AND user_id = ?`
	_, err := r.db.ExecContext(ctx, query, cardID, userID)
	return err
}

func (r *CardRepository) likesFor(ctx context.Context, cardID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM card_likes WHERE card_id = ?`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		likes = append(likes, userID)
	}
	return likes, rows.Err()
}
