package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-builder-api/internal/config"
	"github.com/vfg2006/adset-builder-api/internal/usecases/account"
)

// AccountSyncConfig representa a configuração do agendador de sincronização de contas
type AccountSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AccountSyncService gerencia o agendamento da sincronização de contas de
// anúncio com a plataforma
type AccountSyncService struct {
	scheduler           *gocron.Scheduler
	config              AccountSyncConfig
	accountService      account.AccountService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAccountSyncService cria uma nova instância do serviço de sincronização de contas
func NewAccountSyncService(
	accountService account.AccountService,
	appConfig *config.Config,
) *AccountSyncService {
	// Criar a configuração com base na config global
	syncConfig := AccountSyncConfig{
		CronSchedule: appConfig.AccountSync.CronSchedule,
		SyncEnabled:  appConfig.AccountSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de contas carregada")

	return &AccountSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		accountService: accountService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *AccountSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de contas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de contas")

	// Agendar a sincronização de contas
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de contas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAccounts sincroniza as contas de anúncio dos business managers configurados
func (s *AccountSyncService) syncAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de contas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de contas com a plataforma")

	resp, err := s.accountService.SyncAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar contas com a plataforma")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":     duration.String(),
		"new_accounts": resp.Quantity,
	}).Info("Sincronização de contas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de contas
func (s *AccountSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de contas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de contas")
	go s.syncAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *AccountSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
