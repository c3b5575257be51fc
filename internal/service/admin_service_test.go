package service

import (
	"context"
	"testing"

	"crm-agent-be/internal/constant"
	"crm-agent-be/internal/dto"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/pkg/salesforce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateConfigSwitchesMode(t *testing.T) {
	store := salesforce.NewModeStore(constant.CRMModeMock)
	svc := NewAdminService(store, logger.NewNopLogger())

	response, err := svc.UpdateConfig(context.Background(), &dto.UpdateConfigRequest{Mode: constant.CRMModeReal})
	require.NoError(t, err)

	assert.Equal(t, "Switched to real mode", response.Status)
	assert.Equal(t, constant.CRMModeReal, store.Get())

	status := svc.GetStatus(context.Background())
	assert.Equal(t, constant.CRMModeReal, status.Mode)
}

func TestUpdateConfigBackToMock(t *testing.T) {
	store := salesforce.NewModeStore(constant.CRMModeReal)
	svc := NewAdminService(store, logger.NewNopLogger())

	username := "demo@example.com"
	response, err := svc.UpdateConfig(context.Background(), &dto.UpdateConfigRequest{
		Mode:       constant.CRMModeMock,
		SfUsername: &username,
	})
	require.NoError(t, err)

	assert.Equal(t, "Switched to mock mode", response.Status)
	assert.Equal(t, constant.CRMModeMock, svc.GetStatus(context.Background()).Mode)
}
