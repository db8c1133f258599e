package storage

import (
	"context"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"melodia-server-go/internal/domain/user"
	"melodia-server-go/internal/platform/errors"
)

// UserModel is the persistence shape of a user record.
type UserModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Login     string `gorm:"index;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	Version   int    `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// OpenUserDB opens (and migrates) the sqlite database backing the
// persistent credential store.
func OpenUserDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user_db.open", "failed to open sqlite database", err)
	}
	if err := db.AutoMigrate(&UserModel{}); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user_db.migrate", "failed to migrate users table", err)
	}
	return db, nil
}

// userRepository is the gorm-backed credential store. Login uniqueness is
// still left to the session manager so the behavior matches the memory
// store exactly.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Store {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user.find_all", "failed to list users", err)
	}

	users := make([]*user.User, len(models))
	for i, m := range models {
		users[i] = fromModel(&m)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(errors.KindStorage, "user.find_by_id", "failed to find user", err)
	}
	return fromModel(&m), nil
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(errors.KindStorage, "user.find_by_login", "failed to find user", err)
	}
	return fromModel(&m), nil
}

func (r *userRepository) Insert(ctx context.Context, u *user.User) error {
	if err := r.db.WithContext(ctx).Create(toModel(u)).Error; err != nil {
		return errors.Wrap(errors.KindStorage, "user.insert", "failed to insert user", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	if err := r.db.WithContext(ctx).Save(toModel(u)).Error; err != nil {
		return errors.Wrap(errors.KindStorage, "user.update", "failed to update user", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserModel{}).Error; err != nil {
		return errors.Wrap(errors.KindStorage, "user.delete", "failed to delete user", err)
	}
	return nil
}

func toModel(u *user.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Login:     u.Login,
		Password:  u.Password,
		Version:   u.Version,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func fromModel(m *UserModel) *user.User {
	return &user.User{
		ID:        m.ID,
		Login:     m.Login,
		Password:  m.Password,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
