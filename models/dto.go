package models

type SignupRequest struct {
	Name            string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Email           string `json:"email" form:"email" validate:"required,email,max=255"`
	Password        string `json:"password" form:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthResponse struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

type MovieRequest struct {
	Title      string `json:"title" form:"title" validate:"required,min=1,max=255"`
	Synopsis   string `json:"synopsis" form:"synopsis" validate:"max=5000"`
	Year       int    `json:"year" form:"year" validate:"required,min=1888,max=2100"`
	Duration   int    `json:"duration" form:"duration" validate:"required,min=1,max=1000"`
	Genre      string `json:"genre" form:"genre" validate:"max=100"`
	CoverImage string `json:"cover_image" form:"cover_image" validate:"omitempty,max=500"`
}

type RateRequest struct {
	Score int `json:"score" form:"score" validate:"required,min=1,max=5"`
}

type CommentRequest struct {
	Text string `json:"text" form:"text" validate:"required,min=1,max=1000"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 100000
)

type MovieListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// Normalize clamps paging to sane values.
func (p *MovieListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
}

type MovieDetails struct {
	Movie        Movie     `json:"movie"`
	Comments     []Comment `json:"comments"`
	AverageScore *float64  `json:"average_score"` // nil when the movie has no ratings
	RatingCount  int64     `json:"rating_count"`
}

type Dashboard struct {
	Ratings  []Rating  `json:"ratings"`
	Comments []Comment `json:"comments"`
}
