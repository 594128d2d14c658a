package repository

import (
	"fmt"

	"hr-inventory-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CounterRepository interface {
	NextSequence(prefix string) (int64, error)
	// Mint returns the next id for prefix formatted as PREFIX-00001.
	Mint(prefix string) (string, error)
}

type counterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &counterRepository{db}
}

func (r *counterRepository) NextSequence(prefix string) (int64, error) {
	var seq int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Upsert: row baru mulai dari 1, row lama di-increment secara atomik
		counter := model.Counter{Prefix: prefix, Seq: 1}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "prefix"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"seq": gorm.Expr("counters.seq + 1")}),
		}).Create(&counter).Error
		if err != nil {
			return err
		}

		var stored model.Counter
		if err := tx.Where("prefix = ?", prefix).First(&stored).Error; err != nil {
			return err
		}
		seq = stored.Seq
		return nil
	})
	return seq, err
}

func (r *counterRepository) Mint(prefix string) (string, error) {
	seq, err := r.NextSequence(prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%05d", prefix, seq), nil
}
