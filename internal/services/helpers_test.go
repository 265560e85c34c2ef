package services

import (
	"time"

	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/models"
	"go.uber.org/zap"
)

var testLogger = logging.NewSafeLogger(zap.NewNop())

func sampleSubmission(sex models.Sex) models.Submission {
	return models.Submission{
		Sex:          sex,
		FirstName:    "Jean",
		LastName:     "Dupont",
		Birthday:     "05/03/1990",
		PlaceOfBirth: "Lyon",
		Address:      "12 rue de la Paix",
		City:         "Paris",
		Postcode:     "75001",
		Reason:       "Travail",
	}
}

func fixedTime() time.Time {
	return time.Date(2020, time.November, 2, 9, 7, 45, 0, time.UTC)
}

func mustReasonTable() *ReasonTable {
	table, err := NewReasonTable(models.DefaultReasons)
	if err != nil {
		panic(err)
	}
	return table
}
