package controllers

import (
	"campus-nav/pkg/http/usecases"
	"campus-nav/pkg/navigation"
)

type NavigationService interface {
	Locations() []navigation.Point
	PlanRoute(source, destination string) (usecases.RoutePlan, error)
	AlternativeRoutes(source, destination string, k int) (usecases.AlternativesPlan, error)
	EmergencyRoute(source, emergencyType string) (usecases.EmergencyPlan, error)
}
