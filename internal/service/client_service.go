package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/models"
)

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) ListClientNames(ctx context.Context) ([]ClientSummaryDTO, error) {
	clients := []ClientSummaryDTO{}
	if err := s.db.WithContext(ctx).
		Model(&models.Client{}).
		Select("id", "client_name").
		Scan(&clients).Error; err != nil {
		return nil, mapDatabaseError(err)
	}
	return clients, nil
}

func (s *ClientService) ListClientProfiles(ctx context.Context) ([]ClientProfileDTO, error) {
	var clients []models.Client
	if err := s.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, mapDatabaseError(err)
	}

	profiles := make([]ClientProfileDTO, 0, len(clients))
	for _, client := range clients {
		profiles = append(profiles, clientToProfile(client))
	}
	return profiles, nil
}

func (s *ClientService) GetClientProfile(ctx context.Context, clientID uint) (ClientProfileDTO, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClientProfileDTO{}, apperror.NotFoundf("No client found with id %d", clientID)
		}
		return ClientProfileDTO{}, mapDatabaseError(err)
	}
	return clientToProfile(client), nil
}

func (s *ClientService) CreateClient(ctx context.Context, input CreateClientInput) (uint, error) {
	if err := requireAll(input, "All fields except created_at are required."); err != nil {
		return 0, err
	}

	joined, err := parseDate(input.JoinedDate, "joined_date")
	if err != nil {
		return 0, err
	}

	client := models.Client{
		ClientName:  input.ClientName,
		Address:     input.Address,
		Email:       input.Email,
		PhoneNo:     input.PhoneNo,
		JoinedDate:  joined,
		GstNo:       input.GstNo,
		CompanyType: input.CompanyType,
	}

	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return 0, mapDatabaseError(err)
	}
	return client.ID, nil
}

// UpdateClient writes only the patched columns. It does not check that the
// client exists; an unknown id updates nothing and still succeeds.
func (s *ClientService) UpdateClient(ctx context.Context, clientID uint, patch ClientPatch) error {
	if patch.IsEmpty() {
		return apperror.Validation("No editable fields provided.")
	}

	updates, err := patch.updates()
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(updates).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s *ClientService) DeleteClient(ctx context.Context, clientID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return mapDatabaseError(err)
	}
	if count == 0 {
		return apperror.NotFoundf("No client found with ID %d", clientID)
	}

	if err := s.db.WithContext(ctx).Delete(&models.Client{}, clientID).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func clientToProfile(client models.Client) ClientProfileDTO {
	return ClientProfileDTO{
		ID:          client.ID,
		ClientName:  client.ClientName,
		Address:     client.Address,
		Email:       client.Email,
		PhoneNo:     client.PhoneNo,
		JoinedDate:  formatDate(client.JoinedDate),
		GstNo:       client.GstNo,
		CompanyType: client.CompanyType,
	}
}
