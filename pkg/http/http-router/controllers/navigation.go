package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	helper "campus-nav/pkg/http/http-router/router-helper"
	"campus-nav/pkg/http/usecases"
	"campus-nav/pkg/navigation"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

var (
	regexLocation = regexp.MustCompile(`^[A-Za-z0-9_ '&+,.()-]+$`)
)

type navigationAPI struct {
	navigationService NavigationService
	log               *zap.Logger
}

func New(navigationService NavigationService, log *zap.Logger) *navigationAPI {
	return &navigationAPI{
		navigationService: navigationService,
		log:               log,
	}
}

func (api *navigationAPI) Routes(group *helper.RouteGroup) {
	group.GET("/locations", api.locations)
	group.POST("/shortest-path", api.shortestPath)
	group.POST("/alternative-routes", api.alternativeRoutes)
	group.POST("/emergency-route", api.emergencyRoute)
}

// routeRequest model info
//
//	@Description	request body for a shortest-path query between two campus locations.
type routeRequest struct {
	Start string `json:"start" validate:"required"` // starting location name.
	End   string `json:"end" validate:"required"`   // destination location name.
}

// shortestPath godoc
// @Summary		computes the shortest walking route between two campus locations with a step-by-step trace of the search.
// @Description	computes the shortest walking route between two campus locations with a step-by-step trace of the search.
// @Tags			navigation
// @ID shortest-path
// @Param			body	body	routeRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/shortest-path [post]
// @Success		200	{object}	usecases.RoutePlan
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *navigationAPI) shortestPath(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request routeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, &request, request.Start, request.End) {
		return
	}

	plan, err := api.navigationService.PlanRoute(request.Start, request.End)
	if err != nil {
		api.respondServiceError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": plan}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// alternativeRoutesRequest model info
//
//	@Description	request body for an alternative-routes query.
type alternativeRoutesRequest struct {
	Start string `json:"start" validate:"required"`    // starting location name.
	End   string `json:"end" validate:"required"`      // destination location name.
	K     int    `json:"k" validate:"min=0,max=20"`      // number of alternatives; 0 uses the server default.
}

// alternativeRoutes godoc
// @Summary		finds up to k diverse walking routes between two campus locations, ranked by distance.
// @Description	finds up to k diverse walking routes between two campus locations, ranked by distance.
// @Tags			navigation
// @ID alternative-routes
// @Param			body	body	alternativeRoutesRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/alternative-routes [post]
// @Success		200	{object}	usecases.AlternativesPlan
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *navigationAPI) alternativeRoutes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request alternativeRoutesRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, &request, request.Start, request.End) {
		return
	}

	plan, err := api.navigationService.AlternativeRoutes(request.Start, request.End, request.K)
	if err != nil {
		api.respondServiceError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": plan}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// emergencyRouteRequest model info
//
//	@Description	request body for an emergency-route query.
type emergencyRouteRequest struct {
	Start         string `json:"start" validate:"required"`                                             // current location name.
	EmergencyType string `json:"emergency_type" validate:"required,oneof=medical security fire evacuation"` // emergency category.
}

// emergencyRoute godoc
// @Summary		routes from the current location to the nearest destination of an emergency category.
// @Description	routes from the current location to the nearest destination of an emergency category.
// @Tags			navigation
// @ID emergency-route
// @Param			body	body	emergencyRouteRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/emergency-route [post]
// @Success		200	{object}	usecases.EmergencyPlan
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *navigationAPI) emergencyRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request emergencyRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, &request, request.Start) {
		return
	}

	plan, err := api.navigationService.EmergencyRoute(request.Start, request.EmergencyType)
	if err != nil {
		api.respondServiceError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": plan}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// locations godoc
// @Summary		lists every campus location with its coordinates.
// @Description	lists every campus location with its coordinates.
// @Tags			navigation
// @ID locations
// @Produce		application/json
// @Router			/api/locations [get]
// @Success		200	{object}	envelope
// @Failure		500	{object}	errorResponse
func (api *navigationAPI) locations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	points := api.navigationService.Locations()

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": points, "count": len(points)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// validateRequest runs struct validation plus the location-name character
// guard and writes the 400 response itself when validation fails.
func (api *navigationAPI) validateRequest(w http.ResponseWriter, r *http.Request,
	request interface{}, locationNames ...string) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	for _, name := range locationNames {
		if !regexLocation.MatchString(name) {
			api.BadRequestResponse(w, r, fmt.Errorf("validation error: location name %q contains unsupported characters", name))
			return false
		}
	}
	return true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// unknown names and categories are client errors, everything else is a 500.
func (api *navigationAPI) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, navigation.ErrUnknownLocation):
		api.NotFoundResponse(w, r, err)
	case errors.Is(err, usecases.ErrUnknownEmergencyType):
		api.BadRequestResponse(w, r, err)
	case errors.Is(err, usecases.ErrNoEmergencyRoute):
		api.NotFoundResponse(w, r, err)
	case errors.Is(err, navigation.ErrInvalidRouteCount):
		api.BadRequestResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
