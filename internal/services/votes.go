package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"microblog/internal/models"
)

// Direction literals accepted on the vote route.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// ParseDirection maps a route literal to the stored delta. Only the two
// recognized literals are accepted; nothing is coerced.
func ParseDirection(direction string) (int, error) {
	switch direction {
	case DirectionUp:
		return 1, nil
	case DirectionDown:
		return -1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
}

// VoteLedger maintains at most one vote row per (post, user) pair and
// computes net tallies.
type VoteLedger struct {
	db *gorm.DB
}

func NewVoteLedger(db *gorm.DB) *VoteLedger {
	return &VoteLedger{db: db}
}

// Cast upserts the caller's vote and returns the resulting tally. The upsert
// and the tally read share one transaction, so the returned count always
// includes the vote just cast. Concurrent casts by the same user collapse
// onto the unique (post_id, username) pair; the last committed write wins.
// Under read-committed isolation, casts by different users may each see a
// tally missing the other's not-yet-committed vote.
func (l *VoteLedger) Cast(postID uint, username string, delta int) (int, error) {
	if delta != 1 && delta != -1 {
		return 0, fmt.Errorf("%w: delta %d", ErrInvalidDirection, delta)
	}

	var tally int
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}

		vote := models.Vote{PostID: postID, Username: username, Direction: delta}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "username"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"direction": delta}),
		}).Create(&vote).Error; err != nil {
			return err
		}

		t, err := sumDirections(tx, postID)
		if err != nil {
			return err
		}
		tally = t
		return nil
	})
	if err != nil {
		return 0, err
	}
	return tally, nil
}

// Tally returns the net vote sum for a post, zero when nobody voted.
func (l *VoteLedger) Tally(postID uint) (int, error) {
	return sumDirections(l.db, postID)
}

func sumDirections(tx *gorm.DB, postID uint) (int, error) {
	var tally int
	err := tx.Model(&models.Vote{}).
		Where("post_id = ?", postID).
		Select("COALESCE(SUM(direction), 0)").
		Scan(&tally).Error
	if err != nil {
		return 0, err
	}
	return tally, nil
}
