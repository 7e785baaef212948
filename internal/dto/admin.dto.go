package dto

import "github.com/BruksfildServices01/dance-school/internal/models"

type AdminOverview struct {
	User          *models.User          `json:"user"`
	Classes       []models.DanceClass   `json:"classes"`
	Teachers      []models.Teacher      `json:"teachers"`
	Students      []models.Student      `json:"students"`
	Registrations []models.Registration `json:"registrations"`
}

type RegistrationResult struct {
	Student      *models.Student      `json:"student"`
	Registration *models.Registration `json:"registration"`
}
