// Package api holds the request and response bodies of the HTTP API.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status       string            `json:"status"`
	SystemInfo   SystemInfo        `json:"systemInfo"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type CreateMovieRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type Movie struct {
	Id        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTheaterRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	City string `json:"city" validate:"max=255"`
}

type Theater struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
}

// HallLayout maps row numbers to the number of seats in the row, e.g. {"1": 10, "2": 12}.
type HallLayout map[int]int

type CreateHallRequest struct {
	TheaterId int        `json:"theaterId" validate:"min=1"`
	Name      string     `json:"name" validate:"required,max=255"`
	Layout    HallLayout `json:"layout" validate:"required,seat_layout"`
}

type Hall struct {
	Id        int        `json:"id"`
	TheaterId int        `json:"theaterId"`
	Name      string     `json:"name"`
	Layout    HallLayout `json:"layout"`
	TotalRows int        `json:"totalRows"`
	Capacity  int        `json:"capacity"`
	CreatedAt time.Time  `json:"createdAt"`
}

type CreateShowRequest struct {
	MovieId   int             `json:"movieId" validate:"min=1"`
	TheaterId int             `json:"theaterId" validate:"min=1"`
	HallId    int             `json:"hallId" validate:"min=1"`
	StartTime time.Time       `json:"startTime" validate:"required"`
	Price     decimal.Decimal `json:"price" validate:"gte=0,price"`
}

type Show struct {
	Id        int             `json:"id"`
	MovieId   int             `json:"movieId"`
	TheaterId int             `json:"theaterId"`
	HallId    int             `json:"hallId"`
	StartTime time.Time       `json:"startTime"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Seat struct {
	Id       int  `json:"id"`
	Row      int  `json:"row"`
	Number   int  `json:"number"`
	IsAisle  bool `json:"isAisle"`
	IsBooked bool `json:"isBooked"`
}

type FindConsecutiveSeatsParams struct {
	Count int `validate:"min=1,max=20"`
}

type ConsecutiveSeatsResponse struct {
	ShowId         int    `json:"showId"`
	SeatsRequested int    `json:"seatsRequested"`
	Seats          []Seat `json:"seats"`
	TotalAvailable int    `json:"totalAvailable"`
}

type GetSuggestionsParams struct {
	Count         int `validate:"min=1,max=20"`
	PreferredTime *time.Time
}

type Suggestion struct {
	ShowId         int             `json:"showId"`
	MovieTitle     string          `json:"movieTitle"`
	TheaterName    string          `json:"theaterName"`
	HallName       string          `json:"hallName"`
	StartTime      time.Time       `json:"startTime"`
	PricePerSeat   decimal.Decimal `json:"pricePerSeat"`
	Seats          []Seat          `json:"seats"`
	TotalAvailable int             `json:"totalAvailable"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type GetHallLayoutParams struct {
	ShowId int `validate:"min=1"`
}

type HallLayoutResponse struct {
	HallId         int        `json:"hallId"`
	ShowId         int        `json:"showId"`
	TotalRows      int        `json:"totalRows"`
	Layout         HallLayout `json:"layout"`
	BookedSeats    []Seat     `json:"bookedSeats"`
	AvailableSeats []Seat     `json:"availableSeats"`
}

type CreateBookingRequest struct {
	UserId  int   `json:"userId" validate:"min=1"`
	ShowId  int   `json:"showId" validate:"min=1"`
	SeatIds []int `json:"seatIds" validate:"required,min=1,max=20,unique,dive,min=1"`
}

type CreateGroupBookingRequest struct {
	UserId    int `json:"userId" validate:"min=1"`
	ShowId    int `json:"showId" validate:"min=1"`
	SeatCount int `json:"seatCount" validate:"min=1,max=20"`
}

type Booking struct {
	Id          int             `json:"id"`
	Reference   string          `json:"reference"`
	UserId      int             `json:"userId"`
	ShowId      int             `json:"showId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Seats       []Seat          `json:"seats"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type BookingResponse struct {
	Booking Booking `json:"booking"`
}

type GroupBookingResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Booking     *Booking     `json:"booking,omitempty"`
	SeatsBooked []Seat       `json:"seatsBooked,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

type GetUserBookingsParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}

type UserBookingsResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata Metadata         `json:"metadata"`
}

type BookingSummary struct {
	Id          int             `json:"id"`
	Reference   string          `json:"reference"`
	ShowId      int             `json:"showId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}
