package repositories

// QuotelaneDbRepository carries every query against the quotelane database.
// Methods are spread over the per-entity files of this package.
type QuotelaneDbRepository struct{}

func NewQuotelaneDbRepository() *QuotelaneDbRepository {
	return &QuotelaneDbRepository{}
}
