// Package seeds loads sample plans and students into development databases.
package seeds

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gympoint/internal/infrastructure/persistence/models"
	"gympoint/internal/shared/logger"
)

// DefaultPlans are the plans a fresh gym starts with. Prices are monthly, in cents.
var DefaultPlans = []models.PlanModel{
	{Title: "Start", Duration: 1, Price: 12900, Currency: "BRL"},
	{Title: "Gold", Duration: 3, Price: 10900, Currency: "BRL"},
	{Title: "Diamond", Duration: 6, Price: 8900, Currency: "BRL"},
}

var DefaultStudents = []models.StudentModel{
	{Name: "Maria Souza", Email: "maria@gympoint.com"},
	{Name: "João Pereira", Email: "joao@gympoint.com"},
}

// Seed inserts the default plans and students that are not present yet.
// Plans are matched by title and students by e-mail, so it can run repeatedly.
func Seed(ctx context.Context, db *gorm.DB, log logger.Interface) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created := 0

		for _, p := range DefaultPlans {
			plan := p
			result := tx.Where(models.PlanModel{Title: plan.Title}).FirstOrCreate(&plan)
			if result.Error != nil {
				return fmt.Errorf("failed to seed plan %s: %w", plan.Title, result.Error)
			}
			created += int(result.RowsAffected)
		}

		for _, s := range DefaultStudents {
			student := s
			result := tx.Where(models.StudentModel{Email: student.Email}).FirstOrCreate(&student)
			if result.Error != nil {
				return fmt.Errorf("failed to seed student %s: %w", student.Email, result.Error)
			}
			created += int(result.RowsAffected)
		}

		log.Infow("seed data applied", "created", created)
		return nil
	})
}
