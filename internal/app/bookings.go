package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/domain"
)

const noConsecutiveSeatsMessage = "No consecutive seats available for this show"

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	b, err := app.booking.CreateBooking(r.Context(), booking.CreateBookingInput{
		UserID:  input.UserId,
		ShowID:  input.ShowId,
		SeatIDs: input.SeatIds,
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/bookings/%d", b.ID))

	err = app.writeJSON(w, http.StatusCreated, api.BookingResponse{Booking: toApiBooking(b)}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateGroupBookingHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateGroupBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	result, err := app.booking.CreateGroupBooking(r.Context(), booking.GroupBookingInput{
		UserID: input.UserId,
		ShowID: input.ShowId,
		Count:  input.SeatCount,
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	if !result.Success {
		resp := api.GroupBookingResponse{
			Success:     false,
			Message:     noConsecutiveSeatsMessage,
			Suggestions: toApiSuggestions(result.Suggestions),
		}

		err = app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	apiBooking := toApiBooking(result.Booking)
	resp := api.GroupBookingResponse{
		Success:     true,
		Booking:     &apiBooking,
		SeatsBooked: toApiSeats(result.Seats),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingHandler(w http.ResponseWriter, r *http.Request) {
	bookingID, err := readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	b, err := app.booking.GetBooking(r.Context(), bookingID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.BookingResponse{Booking: toApiBooking(b)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	bookingID, err := readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	b, err := app.booking.CancelBooking(r.Context(), bookingID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.BookingResponse{Booking: toApiBooking(b)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserBookingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := readIDParam(r, "userId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var params api.GetUserBookingsParams

	params.Page, err = readIntQuery(r, "page")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params.PageSize, err = readIntQuery(r, "pageSize")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	bookings, metadata, err := app.booking.ListUserBookings(
		r.Context(),
		userID,
		domain.NewPagination(params.Page, params.PageSize))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: toApiBookingSummaries(bookings),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBooking(b *domain.Booking) api.Booking {
	return api.Booking{
		Id:          b.ID,
		Reference:   b.Reference,
		UserId:      b.UserID,
		ShowId:      b.ShowID,
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		Seats:       toApiSeats(b.Seats),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toApiBookingSummaries(bookings []domain.Booking) []api.BookingSummary {
	summaries := make([]api.BookingSummary, len(bookings))

	for i, v := range bookings {
		summaries[i] = api.BookingSummary{
			Id:          v.ID,
			Reference:   v.Reference,
			ShowId:      v.ShowID,
			Status:      string(v.Status),
			TotalAmount: v.TotalAmount,
			CreatedAt:   v.CreatedAt,
		}
	}

	return summaries
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
