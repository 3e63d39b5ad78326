package scheduler

import (
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/internal/usecases/account/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncServiceForTest(t *testing.T, enabled bool) (*AccountSyncService, *mocks.MockAccountService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAccountService := mocks.NewMockAccountService(ctrl)

	service := &AccountSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config: AccountSyncConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  enabled,
		},
		accountService: mockAccountService,
	}

	return service, mockAccountService
}

func TestAccountSyncService_syncAccounts(t *testing.T) {
	t.Run("Sincronização com sucesso registra os horários", func(t *testing.T) {
		service, mockAccountService := newSyncServiceForTest(t, true)

		mockAccountService.EXPECT().
			SyncAccounts().
			Return(&domain.SyncAccountsResponse{Quantity: 3, Message: "3 nova(s) conta(s) sincronizada(s)"}, nil)

		service.syncAccounts()

		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
		assert.False(t, service.syncRunning)
	})

	t.Run("Falha na sincronização não marca a conclusão", func(t *testing.T) {
		service, mockAccountService := newSyncServiceForTest(t, true)

		mockAccountService.EXPECT().
			SyncAccounts().
			Return(nil, assert.AnError)

		service.syncAccounts()

		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.True(t, service.lastSyncCompletedAt.IsZero())
		assert.False(t, service.syncRunning)
	})

	t.Run("Execução concorrente é ignorada", func(t *testing.T) {
		service, _ := newSyncServiceForTest(t, true)

		// Simula uma sincronização em andamento; nenhuma chamada ao serviço
		// de contas é esperada
		service.syncRunning = true

		service.syncAccounts()

		assert.True(t, service.syncRunning)
	})
}

func TestAccountSyncService_GetStatus(t *testing.T) {
	service, _ := newSyncServiceForTest(t, true)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}
