package infrastructure

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	"github.com/cafeworks/go-workforce/pkg/application"
)

// OpenPostgres opens a Postgres-backed gorm handle with driver error
// translation enabled, so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, and migrates the workforce schema.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates or updates the workforce tables. Exposed separately so
// tests can migrate an SQLite handle.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Cafe{}, &domain.Employee{}, &domain.EmployeeCafe{})
}

type gormCafeRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormCafeRepository(db *gorm.DB, logger application.AppLogger) domain.CafeRepository {
	return &gormCafeRepository{db: db, logger: logger}
}

func (r *gormCafeRepository) Save(ctx context.Context, cafe domain.Cafe) error {
	if err := r.db.WithContext(ctx).Create(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCafeNameTaken
		}
		application.LogError(ctx, r.logger, "failed to save cafe", err, map[string]interface{}{"cafe": cafe})
		return err
	}
	return nil
}

func (r *gormCafeRepository) FindByID(ctx context.Context, id string) (domain.Cafe, error) {
	var cafe domain.Cafe
	if err := r.db.WithContext(ctx).First(&cafe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Cafe{}, domain.ErrCafeNotFound
		}
		return domain.Cafe{}, err
	}
	return cafe, nil
}

func (r *gormCafeRepository) FindByName(ctx context.Context, name string) (domain.Cafe, error) {
	var cafe domain.Cafe
	if err := r.db.WithContext(ctx).First(&cafe, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Cafe{}, domain.ErrCafeNotFound
		}
		return domain.Cafe{}, err
	}
	return cafe, nil
}

func (r *gormCafeRepository) FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error) {
	var cafes []domain.Cafe
	if err := r.db.WithContext(ctx).Where("location = ?", location).Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *gormCafeRepository) Update(ctx context.Context, cafe domain.Cafe) error {
	result := r.db.WithContext(ctx).Save(&cafe)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrCafeNameTaken
		}
		application.LogError(ctx, r.logger, "failed to update cafe", result.Error, map[string]interface{}{"cafe": cafe})
		return result.Error
	}
	return nil
}

func (r *gormCafeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Cafe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCafeNotFound
	}
	return nil
}

type gormEmployeeRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormEmployeeRepository(db *gorm.DB, logger application.AppLogger) domain.EmployeeRepository {
	return &gormEmployeeRepository{db: db, logger: logger}
}

func (r *gormEmployeeRepository) Save(ctx context.Context, employee domain.Employee) error {
	if err := r.db.WithContext(ctx).Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The violated constraint may be the primary key or one of the
			// contact fields; probe the contact fields to tell them apart.
			if _, probeErr := r.FindByEmailOrPhone(ctx, employee.EmailAddress, employee.Phone); probeErr == nil {
				return domain.ErrContactTaken
			}
			return domain.ErrEmployeeIDTaken
		}
		application.LogError(ctx, r.logger, "failed to save employee", err, map[string]interface{}{"employee": employee})
		return err
	}
	return nil
}

func (r *gormEmployeeRepository) FindByID(ctx context.Context, id string) (domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Employee{}, domain.ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}
	return employee, nil
}

func (r *gormEmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := r.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *gormEmployeeRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (domain.Employee, error) {
	var employee domain.Employee
	err := r.db.WithContext(ctx).Where("email_address = ? OR phone = ?", email, phone).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Employee{}, domain.ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}
	return employee, nil
}

func (r *gormEmployeeRepository) Update(ctx context.Context, employee domain.Employee) error {
	result := r.db.WithContext(ctx).Save(&employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrContactTaken
		}
		application.LogError(ctx, r.logger, "failed to update employee", result.Error, map[string]interface{}{"employee": employee})
		return result.Error
	}
	return nil
}

func (r *gormEmployeeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

type gormEmployeeCafeRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormEmployeeCafeRepository(db *gorm.DB, logger application.AppLogger) domain.EmployeeCafeRepository {
	return &gormEmployeeCafeRepository{db: db, logger: logger}
}

func (r *gormEmployeeCafeRepository) Save(ctx context.Context, assignment domain.EmployeeCafe) error {
	if err := r.db.WithContext(ctx).Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		application.LogError(ctx, r.logger, "failed to save assignment", err, map[string]interface{}{"assignment": assignment})
		return err
	}
	return nil
}

func (r *gormEmployeeCafeRepository) FindByID(ctx context.Context, id string) (domain.EmployeeCafe, error) {
	var assignment domain.EmployeeCafe
	if err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EmployeeCafe{}, domain.ErrAssignmentNotFound
		}
		return domain.EmployeeCafe{}, err
	}
	return assignment, nil
}

func (r *gormEmployeeCafeRepository) FindAll(ctx context.Context) ([]domain.EmployeeCafe, error) {
	var assignments []domain.EmployeeCafe
	if err := r.db.WithContext(ctx).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *gormEmployeeCafeRepository) FindByCafeID(ctx context.Context, cafeID string) ([]domain.EmployeeCafe, error) {
	var assignments []domain.EmployeeCafe
	if err := r.db.WithContext(ctx).Where("cafe_id = ?", cafeID).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *gormEmployeeCafeRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]domain.EmployeeCafe, error) {
	var assignments []domain.EmployeeCafe
	if err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *gormEmployeeCafeRepository) FindActive(ctx context.Context, cafeID, employeeID string) (domain.EmployeeCafe, error) {
	var assignment domain.EmployeeCafe
	err := r.db.WithContext(ctx).
		Where("cafe_id = ? AND employee_id = ? AND is_active = ?", cafeID, employeeID, true).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EmployeeCafe{}, domain.ErrAssignmentNotFound
		}
		return domain.EmployeeCafe{}, err
	}
	return assignment, nil
}

func (r *gormEmployeeCafeRepository) CountActiveByCafeID(ctx context.Context, cafeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.EmployeeCafe{}).
		Where("cafe_id = ? AND is_active = ?", cafeID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *gormEmployeeCafeRepository) Update(ctx context.Context, assignment domain.EmployeeCafe) error {
	if err := r.db.WithContext(ctx).Save(&assignment).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to update assignment", err, map[string]interface{}{"assignment": assignment})
		return err
	}
	return nil
}

func (r *gormEmployeeCafeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.EmployeeCafe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}

func (r *gormEmployeeCafeRepository) DeleteByCafeID(ctx context.Context, cafeID string) error {
	return r.db.WithContext(ctx).Delete(&domain.EmployeeCafe{}, "cafe_id = ?", cafeID).Error
}

func (r *gormEmployeeCafeRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).Delete(&domain.EmployeeCafe{}, "employee_id = ?", employeeID).Error
}
