package domain

// Credentials são repassadas ao upstream sem interpretação
type Credentials struct {
	APIKey string `validate:"required"`
	SiteID string `validate:"required"`
}

// Pagination é repassada para cada chamada ao upstream
type Pagination struct {
	Limit  int `validate:"min=1,max=1000"`
	Offset int `validate:"min=0"`
}
