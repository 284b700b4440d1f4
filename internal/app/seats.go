package app

import (
	"net/http"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/domain"
)

func (app *Application) FindConsecutiveSeatsHandler(w http.ResponseWriter, r *http.Request) {
	showID, err := readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	count, err := readIntQuery(r, "count")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.FindConsecutiveSeatsParams{}
	if count != nil {
		params.Count = *count
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seats, err := app.booking.FindConsecutiveSeats(r.Context(), showID, params.Count)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.ConsecutiveSeatsResponse{
		ShowId:         showID,
		SeatsRequested: params.Count,
		Seats:          toApiSeats(seats),
		TotalAvailable: len(seats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	count, err := readIntQuery(r, "count")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	preferredTime, err := readTimeQuery(r, "preferredTime")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.GetSuggestionsParams{PreferredTime: preferredTime}
	if count != nil {
		params.Count = *count
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	suggestions, err := app.booking.SuggestAlternativeShows(r.Context(), booking.SuggestionQuery{
		MovieID:       movieID,
		Count:         params.Count,
		PreferredTime: params.PreferredTime,
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.SuggestionsResponse{
		Suggestions: toApiSuggestions(suggestions),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHallLayoutHandler(w http.ResponseWriter, r *http.Request) {
	hallID, err := readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showID, err := readIntQuery(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.GetHallLayoutParams{}
	if showID != nil {
		params.ShowId = *showID
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	view, err := app.booking.GetHallLayout(r.Context(), hallID, params.ShowId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.HallLayoutResponse{
		HallId:         view.HallID,
		ShowId:         view.ShowID,
		TotalRows:      view.TotalRows,
		Layout:         api.HallLayout(view.Layout),
		BookedSeats:    toApiSeats(view.BookedSeats),
		AvailableSeats: toApiSeats(view.AvailableSeats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSeats(seats []domain.Seat) []api.Seat {
	apiSeats := make([]api.Seat, len(seats))

	for i, v := range seats {
		apiSeats[i] = api.Seat{
			Id:       v.ID,
			Row:      v.Row,
			Number:   v.Number,
			IsAisle:  v.IsAisle,
			IsBooked: v.IsBooked,
		}
	}

	return apiSeats
}

func toApiSuggestions(suggestions []domain.Suggestion) []api.Suggestion {
	apiSuggestions := make([]api.Suggestion, len(suggestions))

	for i, v := range suggestions {
		apiSuggestions[i] = api.Suggestion{
			ShowId:         v.ShowID,
			MovieTitle:     v.MovieTitle,
			TheaterName:    v.TheaterName,
			HallName:       v.HallName,
			StartTime:      v.StartTime,
			PricePerSeat:   v.PricePerSeat,
			Seats:          toApiSeats(v.Seats),
			TotalAvailable: v.TotalAvailable,
		}
	}

	return apiSuggestions
}
