package services

import (
	"errors"
	"time"

	"cafeteria-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidAmount = errors.New("requested amount must be positive")

type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

func (s *RequestService) List() ([]models.ProductRequest, error) {
	var requests []models.ProductRequest
	err := s.db.Preload("Product").Order("id asc").Find(&requests).Error
	return requests, err
}

// Create raises a pending restock request for an existing product.
func (s *RequestService) Create(productID uint, amount float64) (*models.ProductRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	request := models.ProductRequest{
		ProductID: productID,
		Amount:    amount,
		IsAgreed:  false,
		Created:   DateOnly(time.Now().UTC()),
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}
	request.Product = product
	return &request, nil
}

// Agree approves a pending request.
func (s *RequestService) Agree(id uint) (*models.ProductRequest, error) {
	request, err := s.byID(id)
	if err != nil {
		return nil, err
	}

	request.IsAgreed = true
	if err := s.db.Save(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// Fulfill marks a request as delivered today. Fulfilling implies agreement.
func (s *RequestService) Fulfill(id uint) (*models.ProductRequest, error) {
	request, err := s.byID(id)
	if err != nil {
		return nil, err
	}

	today := DateOnly(time.Now().UTC())
	request.IsAgreed = true
	request.Fulfilled = &today
	if err := s.db.Save(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RequestService) byID(id uint) (*models.ProductRequest, error) {
	var request models.ProductRequest
	if err := s.db.Preload("Product").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}
