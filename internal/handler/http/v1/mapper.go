package v1

import (
	"github.com/shenikar/ireporter/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Type:     dto.Type,
		Location: dto.Location,
		Comment:  dto.Comment,
		Images:   dto.Images,
		Videos:   dto.Videos,
	}
}

// DTOToRegisterInput преобразует DTO регистрации во входные данные сервиса
func DTOToRegisterInput(dto RegisterRequest) models.RegisterInput {
	input := models.RegisterInput{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		OtherNames:  dto.OtherNames,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		Username:    dto.Username,
		Password:    dto.Password,
	}
	if dto.IsAdmin != nil {
		input.IsAdmin = *dto.IsAdmin
	}
	return input
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:        model.ID,
		CreatedOn: model.CreatedAt,
		CreatedBy: model.CreatedBy,
		Type:      model.Type,
		Location:  model.Location,
		Status:    string(model.Status),
		Images:    model.Images,
		Videos:    model.Videos,
		Comment:   model.Comment,
	}
	// пустые списки отдаем как [], а не null
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if resp.Videos == nil {
		resp.Videos = []string{}
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:          model.ID,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		OtherNames:  model.OtherNames,
		Email:       model.Email,
		PhoneNumber: model.PhoneNumber,
		Username:    model.Username,
		Registered:  model.RegisteredAt,
		IsAdmin:     model.IsAdmin,
	}
}

// ModelsToUserResponses преобразует слайс пользователей в слайс DTO
func ModelsToUserResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, user := range users {
		responses[i] = ModelToUserResponse(user)
	}
	return responses
}
