package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
)

func (app *Application) CreateMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := &domain.Movie{Title: input.Title}

	err = app.catalogRepo.CreateMovie(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.Movie{
		Id:        movie.ID,
		Title:     movie.Title,
		CreatedAt: movie.CreatedAt,
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%d", movie.ID))

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheaterHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheaterRequest

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

	theater := &domain.Theater{Name: input.Name, City: input.City}

	err = app.catalogRepo.CreateTheater(r.Context(), theater)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.Theater{
		Id:        theater.ID,
		Name:      theater.Name,
		City:      theater.City,
		CreatedAt: theater.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateHallHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateHallRequest

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

	hall := &domain.Hall{
		TheaterID: input.TheaterId,
		Name:      input.Name,
		Layout:    domain.HallLayout(input.Layout),
	}

	err = app.catalogRepo.CreateHall(r.Context(), hall)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.Hall{
		Id:        hall.ID,
		TheaterId: hall.TheaterID,
		Name:      hall.Name,
		Layout:    api.HallLayout(hall.Layout),
		TotalRows: hall.TotalRows(),
		Capacity:  hall.Layout.Capacity(),
		CreatedAt: hall.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowRequest

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

	show := &domain.Show{
		MovieID:   input.MovieId,
		TheaterID: input.TheaterId,
		HallID:    input.HallId,
		StartTime: input.StartTime,
		Price:     input.Price,
	}

	err = app.booking.CreateShow(r.Context(), show)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiShow(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowHandler(w http.ResponseWriter, r *http.Request) {
	showID, err := readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.catalogRepo.GetShow(r.Context(), showID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiShow(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShow(show *domain.Show) api.Show {
	return api.Show{
		Id:        show.ID,
		MovieId:   show.MovieID,
		TheaterId: show.TheaterID,
		HallId:    show.HallID,
		StartTime: show.StartTime,
		Price:     show.Price,
		CreatedAt: show.CreatedAt,
	}
}
