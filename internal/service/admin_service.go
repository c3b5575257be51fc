package service

import (
	"context"
	"fmt"

	"crm-agent-be/internal/dto"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/pkg/salesforce"
)

// IAdminService manages the process-wide CRM mode.
type IAdminService interface {
	UpdateConfig(ctx context.Context, request *dto.UpdateConfigRequest) (*dto.UpdateConfigResponse, error)
	GetStatus(ctx context.Context) *dto.StatusResponse
}

type adminService struct {
	modeStore *salesforce.ModeStore
	logger    logger.ILogger
}

func NewAdminService(modeStore *salesforce.ModeStore, log logger.ILogger) IAdminService {
	return &adminService{
		modeStore: modeStore,
		logger:    log,
	}
}

// UpdateConfig switches the CRM mode. The change is visible to the next
// adapter call; it is not transactional with in-flight requests.
func (as *adminService) UpdateConfig(ctx context.Context, request *dto.UpdateConfigRequest) (*dto.UpdateConfigResponse, error) {
	as.modeStore.Set(request.Mode)

	details := map[string]interface{}{"mode": request.Mode}
	if request.SfUsername != nil {
		details["sf_username"] = *request.SfUsername
	}
	as.logger.Info("admin", "CRM mode switched", details)

	return &dto.UpdateConfigResponse{
		Status: fmt.Sprintf("Switched to %s mode", request.Mode),
	}, nil
}

func (as *adminService) GetStatus(ctx context.Context) *dto.StatusResponse {
	return &dto.StatusResponse{
		Mode: as.modeStore.Get(),
	}
}
