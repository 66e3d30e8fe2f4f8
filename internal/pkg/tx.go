package pkg

import "gorm.io/gorm"

// WithTx runs fn inside a single transaction. Multi-table writes such as
// converting a lead into a deal go through this so either every row lands
// or none do. A panic inside fn rolls back and is re-raised.
func WithTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if err := tx.Error; err != nil {
		return err
	}

	var done bool
	defer func() {
		if !done {
			tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	done = true
	return nil
}
