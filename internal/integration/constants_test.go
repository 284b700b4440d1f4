package integration_test

const (
	TestUserId      = 1
	TestOtherUserId = 2

	TestMovieId    = 1
	TestMovieTitle = "The Go Story"
	TestTheaterId  = 1
	TestHallId     = 1

	// Seeded by testdata/catalog_up.sql.
	TestShowId      = 1
	TestLaterShowId = 2

	TestLockKey = "booking_lock:1:1,2"
)
