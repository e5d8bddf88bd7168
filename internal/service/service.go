package service

import (
	"math"

	"github.com/bookhive/lending-service/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	gateway   PaymentGateway
	maxRefund float64
}

func NewService(repo repository.Repository, gateway PaymentGateway, maxRefund float64, log *zap.Logger) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		gateway:   gateway,
		maxRefund: maxRefund,
	}
}

// validPatronID reports whether id is exactly 6 digits.
func validPatronID(id string) bool {
	if len(id) != 6 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
