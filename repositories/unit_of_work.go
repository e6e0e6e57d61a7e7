package repositories

import "gorm.io/gorm"

// Repositories groups the repositories that share one database handle.
type Repositories struct {
	Users    UserRepository
	Movies   MovieRepository
	Ratings  RatingRepository
	Comments CommentRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    NewUserRepository(db),
		Movies:   NewMovieRepository(db),
		Ratings:  NewRatingRepository(db),
		Comments: NewCommentRepository(db),
	}
}

// UnitOfWork runs fn against repositories bound to a single transaction.
// The transaction commits only if fn returns nil; an error or panic rolls
// every write inside fn back.
type UnitOfWork interface {
	Do(fn func(repos Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(fn func(repos Repositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
